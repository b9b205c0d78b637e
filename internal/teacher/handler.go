package teacher

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edusched/lesson-booking-backend/internal/auth"
	"github.com/edusched/lesson-booking-backend/internal/user"
)

// Handler exposes the public teacher catalog plus profile creation for
// accounts holding the TEACHER role.
type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/teachers", h.listTeachers)
	app.Get("/api/teachers/:id", h.getTeacher)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/teachers", auth.RequireRole(string(user.RoleTeacher)), h.createTeacher)
}

func (h *Handler) listTeachers(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getTeacher(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}

	t, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "teacher not found"})
	}

	return c.JSON(t)
}

type createTeacherRequest struct {
	Bio      string   `json:"bio"`
	Subjects []string `json:"subjects"`
}

func (h *Handler) createTeacher(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createTeacherRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(Teacher{
		UserID:   p.UserID,
		Bio:      payload.Bio,
		Subjects: payload.Subjects,
	})
	if err != nil {
		switch err {
		case ErrAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "teacher profile already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
