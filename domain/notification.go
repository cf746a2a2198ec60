package domain

import (
	"context"
	"time"
)

type CampaignNotification struct {
	NotificationID int     `gorm:"primaryKey;autoIncrement" json:"notification_id"`
	CampaignType   string  `gorm:"type:varchar(30);not null" json:"campaign_type"`
	ItemID         int     `gorm:"not null;index" json:"item_id"`
	StudentID      int     `gorm:"not null" json:"student_id"`
	Student        Student `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student"`
	ParentID       int     `gorm:"not null;index" json:"parent_id"`
	Parent         Parent  `gorm:"foreignKey:ParentID;references:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent"`

	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Notes   string `gorm:"type:text" json:"notes"`

	// ConfirmationStatus mirrors the campaign item status for the parent's
	// inbox view; it is updated, never deleted, as the item moves on.
	ConfirmationStatus string `gorm:"type:varchar(10);not null;default:Pending" json:"confirmation_status"`
	IsRead             bool   `gorm:"default:false" json:"is_read"`
	EmailStatus        bool   `gorm:"not null;default:false" json:"email"`
	WhatsappStatus     bool   `gorm:"not null;default:false" json:"whatsapp"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NotificationRepo interface {
	GetAllNotification(ctx context.Context) (*[]CampaignNotification, error)
	GetNotificationByParent(ctx context.Context, parentID int) (*[]CampaignNotification, error)
	MarkNotificationRead(ctx context.Context, notificationID int) error
}

type NotificationUseCase interface {
	GetAllNotification(ctx context.Context) (*[]CampaignNotification, error)
	GetNotificationByParent(ctx context.Context, parentID int) (*[]CampaignNotification, error)
	MarkNotificationRead(ctx context.Context, notificationID int) error
}
