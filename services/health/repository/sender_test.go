package repository

import (
	"schoolhealth/domain"
	"strings"
	"testing"
	"time"
)

func noticeStudent(parentGender string) *domain.Student {
	return &domain.Student{
		StudentID: 11,
		Name:      "Alice Tan",
		Grade:     3,
		Class:     domain.SchoolClass{ClassID: 1, Name: "3A", Grade: 3},
		Parent: domain.Parent{
			ParentID: 7,
			Name:     "Budi Tan",
			Gender:   parentGender,
		},
	}
}

func noticeItem() *domain.CampaignItem {
	return &domain.CampaignItem{
		ItemID:        1,
		CampaignType:  domain.CampaignHealthExamination,
		Title:         "Annual Checkup",
		Description:   "General examination for grade 3.",
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "10:00",
		Location:      "Room 1",
		Doctor:        "Dr. Siregar",
		Status:        domain.StatusPending,
	}
}

func TestCampaignNoticeText(t *testing.T) {
	subject, body := campaignNoticeText(noticeItem(), noticeStudent("male"), "+62-21-555-0100")

	if !strings.Contains(subject, "Annual Checkup") || !strings.Contains(subject, "Alice Tan") {
		t.Errorf("subject is missing campaign or student name: %q", subject)
	}
	if !strings.Contains(body, "Mr. Budi Tan") {
		t.Errorf("body is missing the father salutation: %q", body)
	}
	for _, want := range []string{"health examination", "Room 1", "01/05/2024", "10:00", "Dr. Siregar", "+62-21-555-0100"} {
		if !strings.Contains(body, want) {
			t.Errorf("body is missing %q", want)
		}
	}
}

func TestCampaignNoticeTextMotherSalutation(t *testing.T) {
	_, body := campaignNoticeText(noticeItem(), noticeStudent("female"), "+62-21-555-0100")
	if !strings.Contains(body, "Mrs. Budi Tan") {
		t.Errorf("body is missing the mother salutation: %q", body)
	}
}

func TestCampaignNoticeTextVaccinationLabel(t *testing.T) {
	item := noticeItem()
	item.CampaignType = domain.CampaignVaccination

	subject, body := campaignNoticeText(item, noticeStudent("male"), "+62-21-555-0100")
	if !strings.Contains(subject, "vaccination") {
		t.Errorf("subject is missing vaccination label: %q", subject)
	}
	if strings.Contains(body, "health examination") {
		t.Errorf("body should not mention health examination: %q", body)
	}
}

func TestFollowUpNoticeText(t *testing.T) {
	item := noticeItem()
	item.Status = domain.StatusCompleted
	item.Result = "Mild anemia detected"
	item.Recommendations = "Iron supplement for 30 days"
	item.FollowUpRequired = true
	followUp := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	item.FollowUpDate = &followUp

	subject, body := followUpNoticeText(item, noticeStudent("female"), "+62-21-555-0100")

	if !strings.Contains(subject, "Follow-up required") {
		t.Errorf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Mild anemia detected", "Iron supplement for 30 days", "on 01/06/2024"} {
		if !strings.Contains(body, want) {
			t.Errorf("body is missing %q", want)
		}
	}
}

func TestFollowUpNoticeTextWithoutDate(t *testing.T) {
	item := noticeItem()
	item.FollowUpRequired = true

	_, body := followUpNoticeText(item, noticeStudent("male"), "+62-21-555-0100")
	if !strings.Contains(body, "as soon as possible") {
		t.Errorf("body is missing the default follow-up wording: %q", body)
	}
}
