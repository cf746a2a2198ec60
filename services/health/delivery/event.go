package delivery

import (
	"schoolhealth/config"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type eventHandler struct {
	uc           domain.EventUseCase
	campaignType string
}

// NewEventDeliveryDeploy registers the derived-event surface under the same
// prefix as the campaign surface it aggregates.
func NewEventDeliveryDeploy(app *fiber.App, uc domain.EventUseCase, prefix, campaignType string) {
	handler := &eventHandler{
		uc:           uc,
		campaignType: campaignType,
	}

	route := app.Group(prefix + "/events")
	route.Get("/", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.ListEvents)
	route.Get("/:event_id", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetEventDetail)
	route.Get("/:event_id/classes/:class_id", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetClassDetail)
	route.Delete("/:event_id", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.DeleteEvent)
}

func (eh *eventHandler) ListEvents(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	events, err := eh.uc.ListEvents(c.Context(), eh.campaignType)
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "ListEvents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve events",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "ListEvents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Events retrieved successfully",
		"data":    events,
	})
}

func (eh *eventHandler) GetEventDetail(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	key, err := domain.ParseEventID(c.Params("event_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetEventDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid event id",
			"error":   err.Error(),
		})
	}

	detail, err := eh.uc.GetEventDetail(c.Context(), eh.campaignType, key)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "GetEventDetail")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve event detail",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetEventDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Event detail retrieved successfully",
		"data":    detail,
	})
}

func (eh *eventHandler) GetClassDetail(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	key, err := domain.ParseEventID(c.Params("event_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetClassDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid event id",
			"error":   err.Error(),
		})
	}

	classID, err := strconv.Atoi(c.Params("class_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetClassDetail")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on class_id",
			"error":   err.Error(),
		})
	}

	detail, err := eh.uc.GetClassDetail(c.Context(), eh.campaignType, key, classID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "GetClassDetail")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve class detail",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetClassDetail")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Class detail retrieved successfully",
		"data":    detail,
	})
}

func (eh *eventHandler) DeleteEvent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	key, err := domain.ParseEventID(c.Params("event_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "DeleteEvent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid event id",
			"error":   err.Error(),
		})
	}

	result, err := eh.uc.DeleteEvent(c.Context(), eh.campaignType, key)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "DeleteEvent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete event",
			"error":   err.Error(),
		})
	}

	if len(result.Failed) > 0 {
		config.PrintLogInfo(&userToken.Username, fiber.StatusAccepted, "DeleteEvent")
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"success": false,
			"message": "Event partially deleted",
			"data":    result,
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "DeleteEvent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Event deleted successfully",
		"data":    result,
	})
}
