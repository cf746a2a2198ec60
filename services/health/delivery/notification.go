package delivery

import (
	"schoolhealth/config"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type notificationHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationDeliveryDeploy(app *fiber.App, uc domain.NotificationUseCase) {
	handler := &notificationHandler{
		uc: uc,
	}

	route := app.Group("/notification")
	route.Get("/get-all", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.GetAllNotification)
	route.Get("/parent/:parent_id", middleware.AuthRequired(), handler.GetNotificationByParent)
	route.Patch("/:id/read", middleware.AuthRequired(), handler.MarkNotificationRead)
}

func (nh *notificationHandler) GetAllNotification(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	notifications, err := nh.uc.GetAllNotification(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllNotification")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve notifications",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

func (nh *notificationHandler) GetNotificationByParent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	parentID, err := strconv.Atoi(c.Params("parent_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetNotificationByParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on parent_id",
			"error":   err.Error(),
		})
	}

	notifications, err := nh.uc.GetNotificationByParent(c.Context(), parentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "GetNotificationByParent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve notifications",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetNotificationByParent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

func (nh *notificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	notificationID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "MarkNotificationRead")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on id",
			"error":   err.Error(),
		})
	}

	if err := nh.uc.MarkNotificationRead(c.Context(), notificationID); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "MarkNotificationRead")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to mark notification as read",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "MarkNotificationRead")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}
