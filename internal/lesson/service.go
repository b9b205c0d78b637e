package lesson

import (
	"github.com/edusched/lesson-booking-backend/internal/teacher"
	"github.com/edusched/lesson-booking-backend/internal/user"
)

// UserDirectory is the slice of the user service the booking flow
// needs: resolving a student by id and a caller by email.
type UserDirectory interface {
	GetByID(id int) (user.User, error)
	GetByEmail(email string) (user.User, error)
}

// TeacherDirectory resolves teacher references by id and by owning
// user id.
type TeacherDirectory interface {
	GetByID(id int) (teacher.Teacher, error)
	GetByUserID(userID int) (teacher.Teacher, error)
}

// Service validates booking references and persists lessons. Nothing
// here prevents double-booking the same teacher or student at the same
// time; the underlying store carries no uniqueness constraint either.
type Service struct {
	repo     Repository
	users    UserDirectory
	teachers TeacherDirectory
}

func NewService(repo Repository, users UserDirectory, teachers TeacherDirectory) *Service {
	return &Service{repo: repo, users: users, teachers: teachers}
}

// Schedule books a lesson. The date-time string is validated before
// any reference resolution; a missing student or teacher fails the
// call without a write.
func (s *Service) Schedule(studentID, teacherID int, dateTime string, modality Modality) (Lesson, error) {
	if !validDateTime(dateTime) {
		return Lesson{}, ErrInvalidDateTime
	}

	if _, err := s.users.GetByID(studentID); err != nil {
		return Lesson{}, ErrStudentNotFound
	}
	if _, err := s.teachers.GetByID(teacherID); err != nil {
		return Lesson{}, ErrTeacherNotFound
	}

	return s.repo.Create(Lesson{
		StudentID: studentID,
		TeacherID: teacherID,
		DateTime:  dateTime,
		Modality:  modality,
	})
}

func (s *Service) ListByStudent(studentID int) ([]Lesson, error) {
	return s.repo.ListByStudentID(studentID)
}

func (s *Service) ListByTeacher(teacherID int) ([]Lesson, error) {
	return s.repo.ListByTeacherID(teacherID)
}
