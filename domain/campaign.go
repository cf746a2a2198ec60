package domain

import (
	"context"
	"time"
)

const (
	CampaignHealthExamination = "health_examination"
	CampaignVaccination       = "vaccination"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCompleted = "Completed"
)

// CampaignItem is one row per (campaign, student). Items sharing
// title/date/time/location belong to the same derived event.
type CampaignItem struct {
	ItemID        int       `gorm:"primaryKey;autoIncrement" json:"item_id"`
	CampaignType  string    `gorm:"type:varchar(30);not null;index" json:"campaign_type"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" valid:"required~Title is required"`
	Description   string    `gorm:"type:text" json:"description"`
	ScheduledDate time.Time `gorm:"type:date;not null" json:"scheduled_date"`
	ScheduledTime string    `gorm:"type:varchar(5);not null" json:"scheduled_time" valid:"required~Scheduled time is required"`
	Location      string    `gorm:"type:varchar(255);not null" json:"location" valid:"required~Location is required"`
	Doctor        string    `gorm:"type:varchar(150)" json:"doctor"`

	// GradeLevel is nil for individually targeted items. Such items have no
	// class grouping peer and are excluded from event aggregation.
	GradeLevel *int    `gorm:"index" json:"grade_level"`
	StudentID  int     `gorm:"not null;index" json:"student_id"`
	Student    Student `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"student" valid:"-"`

	Status              string `gorm:"type:varchar(10);not null;default:Pending" json:"status"`
	ParentResponseNotes string `gorm:"type:text" json:"parent_response_notes"`
	RejectionReason     string `gorm:"type:text" json:"rejection_reason"`

	Result           string     `gorm:"type:text" json:"result"`
	Recommendations  string     `gorm:"type:text" json:"recommendations"`
	FollowUpRequired bool       `gorm:"default:false" json:"follow_up_required"`
	FollowUpDate     *time.Time `gorm:"type:date" json:"follow_up_date"`
	StaffNotes       string     `gorm:"type:text" json:"staff_notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ParentCanRespond reports whether a parent decision is still allowed.
// Rejected and Completed are terminal for parent action.
func (ci *CampaignItem) ParentCanRespond() bool {
	return ci.Status == StatusPending
}

type CampaignDescriptor struct {
	CampaignType  string    `json:"campaign_type"`
	Title         string    `json:"title" valid:"required~Title is required"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time" valid:"required~Scheduled time is required"`
	Location      string    `json:"location" valid:"required~Location is required"`
	Doctor        string    `json:"doctor"`
}

// CampaignSummary reports a grade-wide creation. Creation is a loop of
// independent per-student operations; Failed lists students that could not
// be scheduled without aborting the rest.
type CampaignSummary struct {
	CreatedCount int            `json:"created_count"`
	Items        []CampaignItem `json:"items"`
	Failed       []string       `json:"failed,omitempty"`
}

type ResultPayload struct {
	Result           string     `json:"result" valid:"required~Result is required"`
	Recommendations  string     `json:"recommendations"`
	FollowUpRequired bool       `json:"follow_up_required"`
	FollowUpDate     *time.Time `json:"follow_up_date"`
	StaffNotes       string     `json:"staff_notes"`
}

type CampaignRepo interface {
	CreateIndividualCampaign(ctx context.Context, desc *CampaignDescriptor, studentID int) (*CampaignItem, error)
	CreateGradeCampaign(ctx context.Context, desc *CampaignDescriptor, gradeLevels []int) (*CampaignSummary, error)
	GetItemsByStudent(ctx context.Context, campaignType string, studentID int) (*[]CampaignItem, error)
	RespondToItem(ctx context.Context, campaignType string, studentID, itemID int, decision, notes, rejectionReason string) (*CampaignItem, error)
	RecordResult(ctx context.Context, campaignType string, itemID int, payload *ResultPayload) (*CampaignItem, error)
}

type CampaignUseCase interface {
	CreateIndividualCampaign(ctx context.Context, desc *CampaignDescriptor, studentID int) (*CampaignItem, error)
	CreateGradeCampaign(ctx context.Context, desc *CampaignDescriptor, gradeLevels []int) (*CampaignSummary, error)
	GetItemsByStudent(ctx context.Context, campaignType string, studentID int) (*[]CampaignItem, error)
	RespondToItem(ctx context.Context, campaignType string, studentID, itemID int, decision, notes, rejectionReason string) (*CampaignItem, error)
	RecordResult(ctx context.Context, campaignType string, itemID int, payload *ResultPayload) (*CampaignItem, error)
}
