package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolhealth/domain"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) domain.NotificationRepo {
	return &notificationRepository{
		db: database,
	}
}

func (nr *notificationRepository) GetAllNotification(ctx context.Context) (*[]domain.CampaignNotification, error) {
	var notifications []domain.CampaignNotification
	err := nr.db.WithContext(ctx).
		Preload("Student").
		Preload("Parent").
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}

	return &notifications, nil
}

func (nr *notificationRepository) GetNotificationByParent(ctx context.Context, parentID int) (*[]domain.CampaignNotification, error) {
	var parent domain.Parent
	err := nr.db.WithContext(ctx).Where("parent_id = ? AND deleted_at IS NULL", parentID).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("parent %d: %w", parentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching parent details: %v", err)
	}

	var notifications []domain.CampaignNotification
	err = nr.db.WithContext(ctx).
		Preload("Student").
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}

	return &notifications, nil
}

func (nr *notificationRepository) MarkNotificationRead(ctx context.Context, notificationID int) error {
	result := nr.db.WithContext(ctx).
		Model(&domain.CampaignNotification{}).
		Where("notification_id = ?", notificationID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %d: %w", notificationID, domain.ErrNotFound)
	}

	return nil
}
