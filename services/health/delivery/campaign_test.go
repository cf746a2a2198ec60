package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"schoolhealth/services/health/delivery"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Mock usecase backed by a tiny in-memory roster.
type mockCampaignUC struct {
	rosterByGrade map[int][]domain.Student
	itemStatus    map[int]string
}

func newMockCampaignUC() *mockCampaignUC {
	return &mockCampaignUC{
		rosterByGrade: map[int][]domain.Student{
			3: {
				{StudentID: 11, Name: "Alice", Grade: 3, ClassID: 1},
				{StudentID: 12, Name: "Bob", Grade: 3, ClassID: 1},
				{StudentID: 13, Name: "Cindy", Grade: 3, ClassID: 2},
			},
		},
		itemStatus: map[int]string{
			1: domain.StatusPending,
			2: domain.StatusRejected,
		},
	}
}

func (m *mockCampaignUC) CreateIndividualCampaign(ctx context.Context, desc *domain.CampaignDescriptor, studentID int) (*domain.CampaignItem, error) {
	if studentID == 404 {
		return nil, fmt.Errorf("student %d: %w", studentID, domain.ErrNotFound)
	}
	return &domain.CampaignItem{
		ItemID:        1,
		CampaignType:  desc.CampaignType,
		Title:         desc.Title,
		ScheduledDate: desc.ScheduledDate,
		ScheduledTime: desc.ScheduledTime,
		Location:      desc.Location,
		StudentID:     studentID,
		Status:        domain.StatusPending,
	}, nil
}

func (m *mockCampaignUC) CreateGradeCampaign(ctx context.Context, desc *domain.CampaignDescriptor, gradeLevels []int) (*domain.CampaignSummary, error) {
	summary := &domain.CampaignSummary{Items: []domain.CampaignItem{}}
	for _, grade := range gradeLevels {
		gradeLevel := grade
		for _, student := range m.rosterByGrade[grade] {
			summary.Items = append(summary.Items, domain.CampaignItem{
				ItemID:       len(summary.Items) + 1,
				CampaignType: desc.CampaignType,
				Title:        desc.Title,
				GradeLevel:   &gradeLevel,
				StudentID:    student.StudentID,
				Status:       domain.StatusPending,
			})
			summary.CreatedCount++
		}
	}
	return summary, nil
}

func (m *mockCampaignUC) GetItemsByStudent(ctx context.Context, campaignType string, studentID int) (*[]domain.CampaignItem, error) {
	items := []domain.CampaignItem{}
	return &items, nil
}

func (m *mockCampaignUC) RespondToItem(ctx context.Context, campaignType string, studentID, itemID int, decision, notes, rejectionReason string) (*domain.CampaignItem, error) {
	status, ok := m.itemStatus[itemID]
	if !ok {
		return nil, fmt.Errorf("item %d for student %d: %w", itemID, studentID, domain.ErrNotFound)
	}
	if status != domain.StatusPending {
		return nil, fmt.Errorf("item %d is %s: %w", itemID, status, domain.ErrNotPending)
	}
	m.itemStatus[itemID] = decision
	return &domain.CampaignItem{ItemID: itemID, StudentID: studentID, Status: decision, ParentResponseNotes: notes, RejectionReason: rejectionReason}, nil
}

func (m *mockCampaignUC) RecordResult(ctx context.Context, campaignType string, itemID int, payload *domain.ResultPayload) (*domain.CampaignItem, error) {
	if _, ok := m.itemStatus[itemID]; !ok {
		return nil, fmt.Errorf("item %d: %w", itemID, domain.ErrNotFound)
	}
	m.itemStatus[itemID] = domain.StatusCompleted
	return &domain.CampaignItem{ItemID: itemID, Status: domain.StatusCompleted, Result: payload.Result}, nil
}

func newTestApp(uc domain.CampaignUseCase) *fiber.App {
	app := fiber.New()
	delivery.NewCampaignDeliveryDeploy(app, uc, "/health-examinations", domain.CampaignHealthExamination)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT(&domain.User{UserID: 1, Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	return token
}

func jsonRequest(t *testing.T, method, target, token string, payload any) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("could not encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	return decoded
}

func TestCreateCampaignRequiresAuth(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/health-examinations/", "", fiber.Map{}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestCreateGradeCampaign(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	payload := fiber.Map{
		"target_type":    "grade",
		"grade_levels":   []int{3},
		"title":          "Annual Checkup",
		"scheduled_date": "2024-05-01",
		"scheduled_time": "10:00",
		"location":       "Room 1",
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/health-examinations/", adminToken(t), payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	decoded := decodeBody(t, resp)
	data := decoded["data"].(map[string]any)
	if got := data["created_count"].(float64); got != 3 {
		t.Errorf("created_count = %v, want 3", got)
	}
}

func TestCreateIndividualCampaign(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	payload := fiber.Map{
		"target_type":    "individual",
		"student_id":     11,
		"title":          "Annual Checkup",
		"scheduled_date": "2024-05-01",
		"scheduled_time": "10:00",
		"location":       "Room 1",
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/health-examinations/", adminToken(t), payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	decoded := decodeBody(t, resp)
	data := decoded["data"].(map[string]any)
	if got := data["status"].(string); got != domain.StatusPending {
		t.Errorf("status = %q, want %q", got, domain.StatusPending)
	}
}

func TestCreateCampaignRejectsBadDate(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	payload := fiber.Map{
		"target_type":    "individual",
		"student_id":     11,
		"title":          "Annual Checkup",
		"scheduled_date": "05/01/2024",
		"scheduled_time": "10:00",
		"location":       "Room 1",
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/health-examinations/", adminToken(t), payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestApproveThenRecordResult(t *testing.T) {
	uc := newMockCampaignUC()
	app := newTestApp(uc)
	token := adminToken(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/health-examinations/student/11/item/1/approve", token, fiber.Map{"notes": "ok"}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("approve status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	resp, err = app.Test(jsonRequest(t, http.MethodPatch, "/health-examinations/1/result", token, fiber.Map{"result": "All clear"}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("result status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	if uc.itemStatus[1] != domain.StatusCompleted {
		t.Errorf("item status = %q, want %q", uc.itemStatus[1], domain.StatusCompleted)
	}
}

func TestRespondOnTerminalItemIsRejected(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/health-examinations/student/11/item/2/approve", adminToken(t), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}

func TestRecordResultUnknownItem(t *testing.T) {
	app := newTestApp(newMockCampaignUC())

	resp, err := app.Test(jsonRequest(t, http.MethodPatch, "/health-examinations/404/result", adminToken(t), fiber.Map{"result": "n/a"}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}
