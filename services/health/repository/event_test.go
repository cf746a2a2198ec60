package repository

import (
	"schoolhealth/domain"
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func checkupItem(id, studentID int, class domain.SchoolClass, status string) domain.CampaignItem {
	return domain.CampaignItem{
		ItemID:        id,
		CampaignType:  domain.CampaignHealthExamination,
		Title:         "Annual Checkup",
		ScheduledDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "10:00",
		Location:      "Room 1",
		GradeLevel:    intPtr(3),
		StudentID:     studentID,
		Status:        status,
		Student: domain.Student{
			StudentID: studentID,
			Grade:     3,
			ClassID:   class.ClassID,
			Class:     class,
		},
	}
}

var (
	class3A = domain.SchoolClass{ClassID: 1, Name: "3A", Grade: 3}
	class3B = domain.SchoolClass{ClassID: 2, Name: "3B", Grade: 3}
)

func TestBuildEventsAnnualCheckup(t *testing.T) {
	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
		checkupItem(2, 12, class3A, domain.StatusPending),
		checkupItem(3, 13, class3B, domain.StatusPending),
	}

	events := buildEvents(items)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event := events[0]
	if event.TotalStudents != 3 {
		t.Errorf("total_students = %d, want 3", event.TotalStudents)
	}
	if event.Counts.Pending != 3 || event.Counts.Total() != 3 {
		t.Errorf("unexpected counts: %+v", event.Counts)
	}
	if len(event.GradeLevels) != 1 || event.GradeLevels[0] != 3 {
		t.Errorf("grade_levels = %v, want [3]", event.GradeLevels)
	}
	if len(event.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(event.Classes))
	}
	if event.Classes[0].ClassName != "3A" || event.Classes[0].TotalStudents != 2 {
		t.Errorf("unexpected first class: %+v", event.Classes[0])
	}
	if event.Classes[1].ClassName != "3B" || event.Classes[1].TotalStudents != 1 {
		t.Errorf("unexpected second class: %+v", event.Classes[1])
	}

	wantKey := domain.EventKey{Title: "Annual Checkup", ScheduledDate: "2024-05-01", ScheduledTime: "10:00", Location: "Room 1"}
	if event.EventID != wantKey.EventID() {
		t.Errorf("event_id does not match derived key")
	}
}

func TestBuildEventsStatusSubCountsSumToTotal(t *testing.T) {
	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
		checkupItem(2, 12, class3A, domain.StatusApproved),
		checkupItem(3, 13, class3B, domain.StatusRejected),
		checkupItem(4, 14, class3B, domain.StatusCompleted),
	}

	events := buildEvents(items)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event := events[0]
	if event.Counts.Total() != event.TotalStudents {
		t.Errorf("sub-counts sum %d != total %d", event.Counts.Total(), event.TotalStudents)
	}
	if event.Counts.Pending != 1 || event.Counts.Approved != 1 || event.Counts.Rejected != 1 || event.Counts.Completed != 1 {
		t.Errorf("unexpected counts: %+v", event.Counts)
	}
}

func TestBuildEventsSplitsDistinctKeys(t *testing.T) {
	other := checkupItem(4, 14, class3B, domain.StatusPending)
	other.Title = "Flu Vaccination"
	other.ScheduledDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	sameDayOther := checkupItem(5, 15, class3A, domain.StatusPending)
	sameDayOther.Location = "Room 2"

	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
		other,
		sameDayOther,
	}

	events := buildEvents(items)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Deterministic order: date desc, then title asc.
	if events[0].Title != "Flu Vaccination" {
		t.Errorf("events[0] = %q, want the most recent date first", events[0].Title)
	}
	if events[1].ScheduledDate != "2024-05-01" || events[2].ScheduledDate != "2024-05-01" {
		t.Errorf("unexpected dates: %q, %q", events[1].ScheduledDate, events[2].ScheduledDate)
	}
}

func TestBuildEventDetailGroupsStudentsByClass(t *testing.T) {
	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
		checkupItem(2, 12, class3A, domain.StatusApproved),
		checkupItem(3, 13, class3B, domain.StatusPending),
	}

	detail := buildEventDetail(items)
	if len(detail.Classes) != 2 {
		t.Fatalf("expected 2 class groups, got %d", len(detail.Classes))
	}

	if len(detail.Classes[0].Students) != 2 {
		t.Errorf("class 3A students = %d, want 2", len(detail.Classes[0].Students))
	}
	if len(detail.Classes[1].Students) != 1 {
		t.Errorf("class 3B students = %d, want 1", len(detail.Classes[1].Students))
	}
	if detail.Event.TotalStudents != 3 {
		t.Errorf("event total = %d, want 3", detail.Event.TotalStudents)
	}
}

func TestBuildClassDetail(t *testing.T) {
	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
		checkupItem(2, 12, class3A, domain.StatusApproved),
		checkupItem(3, 13, class3B, domain.StatusPending),
	}

	detail := buildClassDetail(items, class3A.ClassID)
	if detail == nil {
		t.Fatal("expected class detail, got nil")
	}
	if detail.ClassName != "3A" {
		t.Errorf("class_name = %q, want 3A", detail.ClassName)
	}
	if len(detail.Students) != 2 {
		t.Errorf("students = %d, want 2", len(detail.Students))
	}
	if detail.Counts.Pending != 1 || detail.Counts.Approved != 1 {
		t.Errorf("unexpected counts: %+v", detail.Counts)
	}

	got := map[int]bool{}
	for _, s := range detail.Students {
		got[s.StudentID] = true
	}
	if !got[11] || !got[12] {
		t.Errorf("expected students 11 and 12, got %v", got)
	}
}

func TestBuildClassDetailMissingClass(t *testing.T) {
	items := []domain.CampaignItem{
		checkupItem(1, 11, class3A, domain.StatusPending),
	}

	if detail := buildClassDetail(items, 99); detail != nil {
		t.Errorf("expected nil for unknown class, got %+v", detail)
	}
}
