package delivery

import (
	"schoolhealth/config"
	"schoolhealth/domain"
	"schoolhealth/middleware"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type studentHandler struct {
	suc domain.StudentUseCase
}

func NewStudentDeliveryDeploy(app *fiber.App, uc domain.StudentUseCase) {
	handler := &studentHandler{
		suc: uc,
	}

	route := app.Group("/student")
	route.Get("/get-all", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetAllStudent)
	route.Get("/:student_id", middleware.AuthRequired(), handler.GetStudentByID)

	sp := app.Group("/student-and-parent")
	sp.Post("/insert", middleware.AuthRequired(), middleware.RoleRequired("admin"), handler.CreateStudentAndParent)

	class := app.Group("/class")
	class.Get("/get-all", middleware.AuthRequired(), middleware.RoleRequired("admin", "staff"), handler.GetAllClass)
}

func (sh *studentHandler) CreateStudentAndParent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	var payload domain.StudentAndParent
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStudentAndParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(payload.Student); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStudentAndParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid student data",
			"error":   err.Error(),
		})
	}

	if _, err := govalidator.ValidateStruct(payload.Parent); err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "CreateStudentAndParent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid parent data",
			"error":   err.Error(),
		})
	}

	if err := sh.suc.CreateStudentAndParent(c.Context(), &payload); err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "CreateStudentAndParent")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create student and parent",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusCreated, "CreateStudentAndParent")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student and parent created successfully",
		"data":    payload,
	})
}

func (sh *studentHandler) GetAllStudent(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	students, err := sh.suc.GetAllStudent(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllStudent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve students",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Students retrieved successfully",
		"data":    students,
	})
}

func (sh *studentHandler) GetStudentByID(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	studentID, err := strconv.Atoi(c.Params("student_id"))
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusBadRequest, "GetStudentByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Converter Failure on student_id",
			"error":   err.Error(),
		})
	}

	student, err := sh.suc.GetStudentByID(c.Context(), studentID)
	if err != nil {
		status := statusForError(err)
		config.PrintLogInfo(&userToken.Username, status, "GetStudentByID")
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve student",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetStudentByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Student retrieved successfully",
		"data":    student,
	})
}

func (sh *studentHandler) GetAllClass(c *fiber.Ctx) error {
	userToken := c.Locals("user").(*domain.Claims)

	classes, err := sh.suc.GetAllClass(c.Context())
	if err != nil {
		config.PrintLogInfo(&userToken.Username, fiber.StatusInternalServerError, "GetAllClass")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to retrieve classes",
			"error":   err.Error(),
		})
	}

	config.PrintLogInfo(&userToken.Username, fiber.StatusOK, "GetAllClass")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Classes retrieved successfully",
		"data":    classes,
	})
}
