package delivery_test

import (
	"context"
	"fmt"
	"net/http"
	"schoolhealth/domain"
	"schoolhealth/services/health/delivery"
	"testing"

	"github.com/gofiber/fiber/v2"
)

var checkupKey = domain.EventKey{
	Title:         "Annual Checkup",
	ScheduledDate: "2024-05-01",
	ScheduledTime: "10:00",
	Location:      "Room 1",
}

// Mock usecase holding one known event with three items.
type mockEventUC struct {
	key         domain.EventKey
	failOne     bool
	deleteCalls int
}

func (m *mockEventUC) ListEvents(ctx context.Context, campaignType string) (*[]domain.CampaignEvent, error) {
	events := []domain.CampaignEvent{{EventID: m.key.EventID(), Title: m.key.Title, TotalStudents: 3}}
	return &events, nil
}

func (m *mockEventUC) GetEventDetail(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDetail, error) {
	if *key != m.key {
		return nil, fmt.Errorf("event %q on %s: %w", key.Title, key.ScheduledDate, domain.ErrNotFound)
	}
	return &domain.EventDetail{Event: domain.CampaignEvent{EventID: m.key.EventID(), Title: m.key.Title, TotalStudents: 3}}, nil
}

func (m *mockEventUC) GetClassDetail(ctx context.Context, campaignType string, key *domain.EventKey, classID int) (*domain.EventClassDetail, error) {
	if *key != m.key {
		return nil, fmt.Errorf("class %d in event %q: %w", classID, key.Title, domain.ErrNotFound)
	}
	return &domain.EventClassDetail{EventID: m.key.EventID(), ClassID: classID}, nil
}

func (m *mockEventUC) DeleteEvent(ctx context.Context, campaignType string, key *domain.EventKey) (*domain.EventDeleteResult, error) {
	if *key != m.key {
		return nil, fmt.Errorf("event %q on %s: %w", key.Title, key.ScheduledDate, domain.ErrNotFound)
	}

	m.deleteCalls++
	result := &domain.EventDeleteResult{Requested: 3, Deleted: 3}
	if m.failOne {
		result.Deleted = 2
		result.Failed = []string{"item 3: connection reset"}
	}
	return result, nil
}

func newEventTestApp(uc domain.EventUseCase) *fiber.App {
	app := fiber.New()
	delivery.NewEventDeliveryDeploy(app, uc, "/health-examinations", domain.CampaignHealthExamination)
	return app
}

func TestListEvents(t *testing.T) {
	app := newEventTestApp(&mockEventUC{key: checkupKey})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/health-examinations/events/", adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	decoded := decodeBody(t, resp)
	data := decoded["data"].([]any)
	if len(data) != 1 {
		t.Errorf("expected 1 event, got %d", len(data))
	}
}

func TestDeleteEvent(t *testing.T) {
	uc := &mockEventUC{key: checkupKey}
	app := newEventTestApp(uc)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/health-examinations/events/"+checkupKey.EventID(), adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if uc.deleteCalls != 1 {
		t.Errorf("delete calls = %d, want 1", uc.deleteCalls)
	}

	decoded := decodeBody(t, resp)
	data := decoded["data"].(map[string]any)
	if data["deleted"].(float64) != data["requested"].(float64) {
		t.Errorf("deleted %v != requested %v", data["deleted"], data["requested"])
	}
}

func TestDeleteEventPartialFailure(t *testing.T) {
	app := newEventTestApp(&mockEventUC{key: checkupKey, failOne: true})

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/health-examinations/events/"+checkupKey.EventID(), adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusAccepted {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusAccepted)
	}

	decoded := decodeBody(t, resp)
	if decoded["success"].(bool) {
		t.Error("partial deletion should not report success")
	}
}

func TestDeleteEventMalformedID(t *testing.T) {
	app := newEventTestApp(&mockEventUC{key: checkupKey})

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/health-examinations/events/not-a-valid-token", adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestDeleteEventUnknownKey(t *testing.T) {
	app := newEventTestApp(&mockEventUC{key: checkupKey})

	otherKey := domain.EventKey{Title: "Flu Vaccination", ScheduledDate: "2024-06-01", ScheduledTime: "08:00", Location: "Gym Hall"}
	resp, err := app.Test(jsonRequest(t, http.MethodDelete, "/health-examinations/events/"+otherKey.EventID(), adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

func TestGetEventDetailMalformedID(t *testing.T) {
	app := newEventTestApp(&mockEventUC{key: checkupKey})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/health-examinations/events/%21%21%21", adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
