package lesson

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/edusched/lesson-booking-backend/internal/auth"
	"github.com/edusched/lesson-booking-backend/internal/user"
)

// Handler maps the booking endpoints onto the lesson service. The two
// "mine" endpoints resolve the caller through the user and teacher
// directories the same way the handler's role middleware already
// authorized them.
type Handler struct {
	service  *Service
	users    UserDirectory
	teachers TeacherDirectory
}

func NewHandler(s *Service, users UserDirectory, teachers TeacherDirectory) *Handler {
	return &Handler{service: s, users: users, teachers: teachers}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/lessons", auth.RequireRole(string(user.RoleStudent)), h.createLesson)
	app.Get("/api/lessons/mine-as-student", auth.RequireRole(string(user.RoleStudent)), h.listMineAsStudent)
	app.Get("/api/lessons/mine-as-teacher", auth.RequireRole(string(user.RoleTeacher)), h.listMineAsTeacher)
}

type createLessonRequest struct {
	StudentID int    `json:"studentId"`
	TeacherID int    `json:"teacherId"`
	DateTime  string `json:"dateTime"`
	Modality  string `json:"modality"`
}

func (h *Handler) createLesson(c *fiber.Ctx) error {
	payload := new(createLessonRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	modality, err := ParseModality(payload.Modality)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "modality must be ONLINE or IN_PERSON"})
	}

	created, err := h.service.Schedule(payload.StudentID, payload.TeacherID, payload.DateTime, modality)
	if err != nil {
		switch err {
		case ErrStudentNotFound, ErrTeacherNotFound:
			// missing reference -> plain 400, no body
			return c.Status(fiber.StatusBadRequest).Send(nil)
		case ErrInvalidDateTime:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "dateTime must be an ISO-8601 date-time"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	c.Set(fiber.HeaderLocation, "/api/lessons/"+strconv.Itoa(created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listMineAsStudent(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.users.GetByEmail(p.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lessons, err := h.service.ListByStudent(u.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(lessons)
}

func (h *Handler) listMineAsTeacher(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, err := h.users.GetByEmail(p.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	t, err := h.teachers.GetByUserID(u.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no teacher profile for user"})
	}

	lessons, err := h.service.ListByTeacher(t.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(lessons)
}
