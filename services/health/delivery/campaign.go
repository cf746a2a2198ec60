package delivery

import (
	"errors"
	"schoolhealth/config"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type campaignHandler struct {
	uc           domain.CampaignUseCase
	campaignType string
}

// NewCampaignDeliveryDeploy registers the per-student campaign surface under
// the given prefix ("/health-examinations" or "/vaccination-schedules").
func NewCampaignDeliveryDeploy(app *fiber.App, uc domain.CampaignUseCase, prefix, campaignType string) {
	handler := &campaignHandler{
		uc:           uc,
		campaignType: campaignType,
	}

	route := app.Group(prefix)
	route.Post("/", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.CreateCampaign)
	route.Get("/student/:student_id", middleware.AuthRequired(), handler.GetItemsByStudent)
	route.Patch("/:id/result", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.RecordResult)
	route.Patch("/student/:student_id/item/:id/approve", middleware.AuthRequired(), handler.ApproveItem)
	route.Patch("/student/:student_id/item/:id/cancel", middleware.AuthRequired(), handler.CancelItem)
}

type createCampaignRequest struct {
	TargetType    string `json:"target_type" valid:"required~Target type is required,in(individual|grade)~Invalid target type"`
	StudentID     int    `json:"student_id"`
	GradeLevels   []int  `json:"grade_levels"`
	Title         string `json:"title" valid:"required~Title is required"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date" valid:"required~Scheduled date is required"`
	ScheduledTime string `json:"scheduled_time" valid:"required~Scheduled time is required"`
	Location      string `json:"location" valid:"required~Location is required"`
	Doctor        string `json:"doctor"`
}

func (ch *campaignHandler) CreateCampaign(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload createCampaignRequest
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateCampaign")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateCampaign")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	scheduledDate, err := time.Parse("2006-01-02", payload.ScheduledDate)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateCampaign")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid scheduled date, expected YYYY-MM-DD",
			"error":   err.Error(),
		})
	}

	desc := &domain.CampaignDescriptor{
		CampaignType:  ch.campaignType,
		Title:         payload.Title,
		Description:   payload.Description,
		ScheduledDate: scheduledDate,
		ScheduledTime: payload.ScheduledTime,
		Location:      payload.Location,
		Doctor:        payload.Doctor,
	}

	if payload.TargetType == "individual" {
		if payload.StudentID == 0 {
			config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateCampaign")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "student_id is required for an individual campaign",
			})
		}

		item, err := ch.uc.CreateIndividualCampaign(c.Context(), desc, payload.StudentID)
		if err != nil {
			status := statusForError(err)
			config.PrintLogInfo(&userToken.Username, status, "CreateCampaign")
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"message": "Failed to create campaign",
				"error":   err.Error(),
			})
		}

		config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateCampaign")
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Campaign created successfully",
			"data":    item,
		})
	}

	if len(payload.GradeLevels) == 0 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateCampaign")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "grade_levels is required for a grade-wide campaign",
		})
	}

	summary, err := ch.uc.CreateGradeCampaign(c.Context(), desc, payload.GradeLevels)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "CreateCampaign")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create campaign",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateCampaign")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Campaign created successfully",
		"data":    summary,
	})
}

func (ch *campaignHandler) GetItemsByStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := strconv.Atoi(c.Params("student_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetItemsByStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on student_id",
			"error":   err.Error(),
		})
	}

	items, err := ch.uc.GetItemsByStudent(c.Context(), ch.campaignType, studentID)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetItemsByStudent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve campaign items",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetItemsByStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Campaign items retrieved successfully",
		"data":    items,
	})
}

func (ch *campaignHandler) RecordResult(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordResult")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on id",
			"error":   err.Error(),
		})
	}

	var payload domain.ResultPayload
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordResult")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "RecordResult")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	item, err := ch.uc.RecordResult(c.Context(), ch.campaignType, itemID, &payload)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "RecordResult")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to record result",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "RecordResult")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Result recorded successfully",
		"data":    item,
	})
}

type parentResponseRequest struct {
	Notes           string `json:"notes"`
	RejectionReason string `json:"rejection_reason"`
}

func (ch *campaignHandler) ApproveItem(c *fiber.Ctx) error {
	return ch.respond(c, domain.StatusApproved, "ApproveItem")
}

func (ch *campaignHandler) CancelItem(c *fiber.Ctx) error {
	return ch.respond(c, domain.StatusRejected, "CancelItem")
}

func (ch *campaignHandler) respond(c *fiber.Ctx, decision, functionName string) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := strconv.Atoi(c.Params("student_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, functionName)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on student_id",
			"error":   err.Error(),
		})
	}

	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, functionName)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on id",
			"error":   err.Error(),
		})
	}

	var payload parentResponseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, functionName)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid data",
				"error":   err.Error(),
			})
		}
	}

	item, err := ch.uc.RespondToItem(c.Context(), ch.campaignType, studentID, itemID, decision, payload.Notes, payload.RejectionReason)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, functionName)
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to store parent response",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, functionName)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Parent response stored successfully",
		"data":    item,
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotPending):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
