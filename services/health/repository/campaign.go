package repository

import (
	"context"
	"errors"
	"fmt"
	"schoolhealth/config"
	"schoolhealth/domain"

	"gorm.io/gorm"
)

type campaignRepository struct {
	db       *gorm.DB
	sender   domain.SenderRepo
	students domain.StudentRepo
}

func NewCampaignRepository(database *gorm.DB, sender domain.SenderRepo, students domain.StudentRepo) domain.CampaignRepo {
	return &campaignRepository{
		db:       database,
		sender:   sender,
		students: students,
	}
}

func (cr *campaignRepository) CreateIndividualCampaign(ctx context.Context, desc *domain.CampaignDescriptor, studentID int) (*domain.CampaignItem, error) {
	var student domain.Student
	err := cr.db.WithContext(ctx).Preload("Parent").Preload("Class").Where("student_id = ?", studentID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %d: %w", studentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch student details: %v", err)
	}

	item := cr.buildItem(desc, &student, nil)
	if err := cr.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create campaign item: %w", err)
	}
	item.Student = student

	// Notification is best-effort: a dispatch failure must never fail the
	// campaign creation.
	if err := cr.sender.NotifyCampaignItem(ctx, item); err != nil {
		config.GetLogrusInstance().Warnf("notification for item %d swallowed: %v", item.ItemID, err)
	}

	return item, nil
}

func (cr *campaignRepository) CreateGradeCampaign(ctx context.Context, desc *domain.CampaignDescriptor, gradeLevels []int) (*domain.CampaignSummary, error) {
	log := config.GetLogrusInstance()
	summary := &domain.CampaignSummary{Items: []domain.CampaignItem{}}

	for _, grade := range gradeLevels {
		roster, err := cr.students.GetStudentsByGrade(ctx, grade)
		if err != nil {
			summary.Failed = append(summary.Failed, fmt.Sprintf("grade %d: %v", grade, err))
			continue
		}

		gradeLevel := grade
		for i := range *roster {
			student := (*roster)[i]
			item := cr.buildItem(desc, &student, &gradeLevel)

			// Each student is an independent operation: one failure must not
			// block the rest of the roster.
			if err := cr.db.WithContext(ctx).Create(item).Error; err != nil {
				summary.Failed = append(summary.Failed, fmt.Sprintf("student %d: %v", student.StudentID, err))
				continue
			}
			item.Student = student

			if err := cr.sender.NotifyCampaignItem(ctx, item); err != nil {
				log.Warnf("notification for item %d swallowed: %v", item.ItemID, err)
			}

			summary.Items = append(summary.Items, *item)
			summary.CreatedCount++
		}
	}

	return summary, nil
}

func (cr *campaignRepository) buildItem(desc *domain.CampaignDescriptor, student *domain.Student, gradeLevel *int) *domain.CampaignItem {
	return &domain.CampaignItem{
		CampaignType:  desc.CampaignType,
		Title:         desc.Title,
		Description:   desc.Description,
		ScheduledDate: desc.ScheduledDate,
		ScheduledTime: desc.ScheduledTime,
		Location:      desc.Location,
		Doctor:        desc.Doctor,
		GradeLevel:    gradeLevel,
		StudentID:     student.StudentID,
		Status:        domain.StatusPending,
	}
}

func (cr *campaignRepository) GetItemsByStudent(ctx context.Context, campaignType string, studentID int) (*[]domain.CampaignItem, error) {
	var items []domain.CampaignItem
	err := cr.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Parent").
		Where("campaign_type = ? AND student_id = ?", campaignType, studentID).
		Order("scheduled_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve campaign items: %w", err)
	}

	return &items, nil
}

func (cr *campaignRepository) RespondToItem(ctx context.Context, campaignType string, studentID, itemID int, decision, notes, rejectionReason string) (*domain.CampaignItem, error) {
	if decision != domain.StatusApproved && decision != domain.StatusRejected {
		return nil, fmt.Errorf("invalid decision %q", decision)
	}

	var item domain.CampaignItem
	err := cr.db.WithContext(ctx).
		Where("campaign_type = ? AND item_id = ? AND student_id = ?", campaignType, itemID, studentID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d for student %d: %w", itemID, studentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch campaign item: %v", err)
	}

	if !item.ParentCanRespond() {
		return nil, fmt.Errorf("item %d is %s: %w", itemID, item.Status, domain.ErrNotPending)
	}

	item.Status = decision
	item.ParentResponseNotes = notes
	if decision == domain.StatusRejected {
		item.RejectionReason = rejectionReason
	}

	if err := cr.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to store parent response: %w", err)
	}

	cr.mirrorNotificationStatus(ctx, &item)

	return &item, nil
}

func (cr *campaignRepository) RecordResult(ctx context.Context, campaignType string, itemID int, payload *domain.ResultPayload) (*domain.CampaignItem, error) {
	var item domain.CampaignItem
	err := cr.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Parent").
		Where("campaign_type = ? AND item_id = ?", campaignType, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not fetch campaign item: %v", err)
	}

	// Result recording is allowed from any status and always completes the
	// item, even when the parent never responded.
	item.Status = domain.StatusCompleted
	item.Result = payload.Result
	item.Recommendations = payload.Recommendations
	item.FollowUpRequired = payload.FollowUpRequired
	item.FollowUpDate = payload.FollowUpDate
	item.StaffNotes = payload.StaffNotes

	if err := cr.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to store examination result: %w", err)
	}

	cr.mirrorNotificationStatus(ctx, &item)

	if item.FollowUpRequired {
		if err := cr.sender.NotifyFollowUp(ctx, &item); err != nil {
			config.GetLogrusInstance().Warnf("follow-up notification for item %d swallowed: %v", item.ItemID, err)
		}
	}

	return &item, nil
}

// mirrorNotificationStatus keeps the parent's inbox row in sync with the
// item. Best-effort; a failure here never surfaces to the caller.
func (cr *campaignRepository) mirrorNotificationStatus(ctx context.Context, item *domain.CampaignItem) {
	err := cr.db.WithContext(ctx).
		Model(&domain.CampaignNotification{}).
		Where("campaign_type = ? AND item_id = ?", item.CampaignType, item.ItemID).
		Update("confirmation_status", item.Status).Error
	if err != nil {
		config.GetLogrusInstance().Warnf("failed to mirror status for item %d: %v", item.ItemID, err)
	}
}
