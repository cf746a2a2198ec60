package delivery

import (
	"schoolhealth/config"
	"schoolhealth/domain"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthDeliveryDeploy(app *fiber.App, uc domain.AuthUseCase) {
	handler := &authHandler{
		uc: uc,
	}

	route := app.Group("/auth")
	route.Post("/login", handler.Login)
}

func (ah *authHandler) Login(c *fiber.Ctx) error {
	var payload domain.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		config.PrintLogInfo(&payload.Username, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	data, err := ah.uc.Login(c.Context(), &payload)
	if err != nil {
		config.PrintLogInfo(&payload.Username, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Login failed",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&payload.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    data,
	})
}
