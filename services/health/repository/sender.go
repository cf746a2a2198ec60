package repository

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"schoolhealth/domain"
	"strings"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"gorm.io/gorm"
)

type senderRepository struct {
	db          *gorm.DB
	client      smtp.Auth
	emailSender string
	schoolPhone string
	smtpAddress string
	meowClient  *whatsmeow.Client
}

func NewSenderRepository(db *gorm.DB, client smtp.Auth, smtpAddress, schoolPhone, emailSender string, meow *whatsmeow.Client) domain.SenderRepo {
	return &senderRepository{
		db:          db,
		client:      client,
		emailSender: emailSender,
		schoolPhone: schoolPhone,
		smtpAddress: smtpAddress,
		meowClient:  meow,
	}
}

func (sr *senderRepository) NotifyCampaignItem(ctx context.Context, item *domain.CampaignItem) error {
	student, err := sr.resolveStudent(ctx, item)
	if err != nil {
		return err
	}

	subject, body := campaignNoticeText(item, student, sr.schoolPhone)

	notification := &domain.CampaignNotification{
		CampaignType:       item.CampaignType,
		ItemID:             item.ItemID,
		StudentID:          student.StudentID,
		ParentID:           student.ParentID,
		Title:              subject,
		Content:            body,
		ConfirmationStatus: item.Status,
	}

	// The inbox row is created before any channel attempt so the parent
	// always sees the campaign, even when both channels fail.
	if err := sr.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("could not create campaign notification: %v", err)
	}

	return sr.dispatch(ctx, notification, student, subject, body)
}

func (sr *senderRepository) NotifyFollowUp(ctx context.Context, item *domain.CampaignItem) error {
	student, err := sr.resolveStudent(ctx, item)
	if err != nil {
		return err
	}

	subject, body := followUpNoticeText(item, student, sr.schoolPhone)

	notification := &domain.CampaignNotification{
		CampaignType:       item.CampaignType,
		ItemID:             item.ItemID,
		StudentID:          student.StudentID,
		ParentID:           student.ParentID,
		Title:              subject,
		Content:            body,
		Notes:              item.Recommendations,
		ConfirmationStatus: item.Status,
	}

	if err := sr.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("could not create follow-up notification: %v", err)
	}

	return sr.dispatch(ctx, notification, student, subject, body)
}

func (sr *senderRepository) resolveStudent(ctx context.Context, item *domain.CampaignItem) (*domain.Student, error) {
	if item.Student.StudentID != 0 && item.Student.Parent.ParentID != 0 {
		return &item.Student, nil
	}

	var student domain.Student
	err := sr.db.WithContext(ctx).Preload("Parent").Preload("Class").Where("student_id = ?", item.StudentID).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student with ID %d not found", item.StudentID)
		}
		return nil, fmt.Errorf("could not fetch student details: %v", err)
	}

	return &student, nil
}

// dispatch attempts email then WhatsApp and records per-channel status on
// the notification row. At-most-once per channel, no retry.
func (sr *senderRepository) dispatch(ctx context.Context, notification *domain.CampaignNotification, student *domain.Student, subject, body string) error {
	var failures []string

	if student.Parent.Email != nil && *student.Parent.Email != "" {
		if err := sr.sendEmail(*student.Parent.Email, subject, body); err != nil {
			failures = append(failures, fmt.Sprintf("email to %s: %v", *student.Parent.Email, err))
		} else {
			notification.EmailStatus = true
		}
	}

	if err := sr.sendWA(ctx, student.Parent.Telephone, body); err != nil {
		failures = append(failures, fmt.Sprintf("whatsapp to %s: %v", student.Parent.Telephone, err))
	} else {
		notification.WhatsappStatus = true
	}

	err := sr.db.WithContext(ctx).
		Model(notification).
		Updates(map[string]interface{}{
			"email_status":    notification.EmailStatus,
			"whatsapp_status": notification.WhatsappStatus,
		}).Error
	if err != nil {
		failures = append(failures, fmt.Sprintf("status update: %v", err))
	}

	if len(failures) > 0 {
		return fmt.Errorf("dispatch incomplete: %s", strings.Join(failures, "; "))
	}

	return nil
}

func (sr *senderRepository) sendEmail(recipient, subject, body string) error {
	msg := "From: " + sr.emailSender + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		body

	err := smtp.SendMail(sr.smtpAddress, sr.client, sr.emailSender, []string{recipient}, []byte(msg))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (sr *senderRepository) sendWA(ctx context.Context, telephone, body string) error {
	completeFormat := fmt.Sprintf("%s%s", "62", telephone[1:])

	jid := types.NewJID(completeFormat, types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &body,
	}

	_, err := sr.meowClient.SendMessage(ctx, jid, conversationMessage)
	if err != nil {
		return err
	}
	return nil
}

func campaignKindLabel(campaignType string) string {
	if campaignType == domain.CampaignVaccination {
		return "vaccination"
	}
	return "health examination"
}

func parentSalutation(parent *domain.Parent) string {
	if parent.Gender == "male" {
		return fmt.Sprintf("Mr. %s", parent.Name)
	}
	return fmt.Sprintf("Mrs. %s", parent.Name)
}

func campaignNoticeText(item *domain.CampaignItem, student *domain.Student, schoolPhone string) (string, string) {
	kind := campaignKindLabel(item.CampaignType)
	formattedDate := item.ScheduledDate.Format("02/01/2006")

	subject := fmt.Sprintf("Notification of %s %q for %s on %s", kind, item.Title, student.Name, formattedDate)

	body := fmt.Sprintf(`SchoolHealth Service 🔔

Dear %s,

We would like to inform you that a %s has been scheduled for your child,

Name: %s,
Class: %s.

Title: %s
Date: %s at %s
Location: %s
Doctor: %s

%s

Please approve or reject this schedule through your parent dashboard. The appointment stays pending until we receive your response.

If you have any questions or require further assistance, please feel free to contact us at %s.

Thank you for your attention and cooperation.`,
		parentSalutation(&student.Parent), kind, student.Name, student.Class.Name,
		item.Title, formattedDate, item.ScheduledTime, item.Location, item.Doctor,
		item.Description, schoolPhone)

	return subject, body
}

func followUpNoticeText(item *domain.CampaignItem, student *domain.Student, schoolPhone string) (string, string) {
	kind := campaignKindLabel(item.CampaignType)
	formattedDate := item.ScheduledDate.Format("02/01/2006")

	subject := fmt.Sprintf("Follow-up required after %s %q for %s", kind, item.Title, student.Name)

	followUpWhen := "as soon as possible"
	if item.FollowUpDate != nil {
		followUpWhen = fmt.Sprintf("on %s", item.FollowUpDate.Format("02/01/2006"))
	}

	body := fmt.Sprintf(`SchoolHealth Service 🔔

Dear %s,

The %s %q held on %s for your child %s has been completed, and the examining doctor recommends a follow-up %s.

Result: %s
Recommendations: %s

If you have any questions or require further assistance, please feel free to contact us at %s.

Thank you for your attention and cooperation.`,
		parentSalutation(&student.Parent), kind, item.Title, formattedDate, student.Name, followUpWhen,
		item.Result, item.Recommendations, schoolPhone)

	return subject, body
}
