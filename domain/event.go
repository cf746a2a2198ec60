package domain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

const eventDateLayout = "2006-01-02"

// EventKey identifies a derived event. Events are never persisted; any two
// items sharing all four fields belong to the same event.
type EventKey struct {
	Title         string `json:"title"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Location      string `json:"location"`
}

func KeyForItem(item *CampaignItem) EventKey {
	return EventKey{
		Title:         item.Title,
		ScheduledDate: item.ScheduledDate.Format(eventDateLayout),
		ScheduledTime: item.ScheduledTime,
		Location:      item.Location,
	}
}

// EventID renders the key as an opaque URL-safe token. The structured
// encoding keeps titles containing separators or unicode unambiguous.
func (k EventKey) EventID() string {
	raw, _ := json.Marshal(k)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func ParseEventID(eventID string) (*EventKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(eventID)
	if err != nil {
		return nil, fmt.Errorf("malformed event id: %v", err)
	}

	var key EventKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, fmt.Errorf("malformed event id: %v", err)
	}

	if key.Title == "" || key.ScheduledDate == "" || key.ScheduledTime == "" || key.Location == "" {
		return nil, fmt.Errorf("incomplete event id")
	}

	if _, err := time.Parse(eventDateLayout, key.ScheduledDate); err != nil {
		return nil, fmt.Errorf("malformed event date: %v", err)
	}

	return &key, nil
}

type StatusCounts struct {
	Pending   int `json:"pending_count"`
	Approved  int `json:"approved_count"`
	Rejected  int `json:"rejected_count"`
	Completed int `json:"completed_count"`
}

func (sc *StatusCounts) Add(status string) {
	switch status {
	case StatusPending:
		sc.Pending++
	case StatusApproved:
		sc.Approved++
	case StatusRejected:
		sc.Rejected++
	case StatusCompleted:
		sc.Completed++
	}
}

func (sc StatusCounts) Total() int {
	return sc.Pending + sc.Approved + sc.Rejected + sc.Completed
}

type EventClassSummary struct {
	ClassID       int          `json:"class_id"`
	ClassName     string       `json:"class_name"`
	Grade         int          `json:"grade"`
	TotalStudents int          `json:"total_students"`
	Counts        StatusCounts `json:"counts"`
}

type CampaignEvent struct {
	EventID       string              `json:"event_id"`
	CampaignType  string              `json:"campaign_type"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	ScheduledDate string              `json:"scheduled_date"`
	ScheduledTime string              `json:"scheduled_time"`
	Location      string              `json:"location"`
	Doctor        string              `json:"doctor"`
	TotalStudents int                 `json:"total_students"`
	GradeLevels   []int               `json:"grade_levels"`
	Counts        StatusCounts        `json:"counts"`
	Classes       []EventClassSummary `json:"classes"`
}

type EventClassDetail struct {
	EventID   string         `json:"event_id"`
	ClassID   int            `json:"class_id"`
	ClassName string         `json:"class_name"`
	Grade     int            `json:"grade"`
	Counts    StatusCounts   `json:"counts"`
	Students  []CampaignItem `json:"students"`
}

type EventClassGroup struct {
	EventClassSummary
	Students []CampaignItem `json:"students"`
}

type EventDetail struct {
	Event   CampaignEvent     `json:"event"`
	Classes []EventClassGroup `json:"classes"`
}

// EventDeleteResult reports a bulk delete. Deletion is a loop of independent
// single-item deletes; a mid-loop failure leaves prior deletions in place.
type EventDeleteResult struct {
	Requested int      `json:"requested"`
	Deleted   int      `json:"deleted"`
	Failed    []string `json:"failed,omitempty"`
}

type EventRepo interface {
	ListEvents(ctx context.Context, campaignType string) (*[]CampaignEvent, error)
	GetEventDetail(ctx context.Context, campaignType string, key *EventKey) (*EventDetail, error)
	GetClassDetail(ctx context.Context, campaignType string, key *EventKey, classID int) (*EventClassDetail, error)
	DeleteEvent(ctx context.Context, campaignType string, key *EventKey) (*EventDeleteResult, error)
}

type EventUseCase interface {
	ListEvents(ctx context.Context, campaignType string) (*[]CampaignEvent, error)
	GetEventDetail(ctx context.Context, campaignType string, key *EventKey) (*EventDetail, error)
	GetClassDetail(ctx context.Context, campaignType string, key *EventKey, classID int) (*EventClassDetail, error)
	DeleteEvent(ctx context.Context, campaignType string, key *EventKey) (*EventDeleteResult, error)
}
