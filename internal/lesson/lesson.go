package lesson

import (
	"errors"
	"strings"
	"time"
)

// TimeLayout is the wire format for lesson timestamps, an ISO-8601
// local date-time such as "2025-06-15T14:30:00".
const TimeLayout = "2006-01-02T15:04:05"

type Modality string

const (
	ModalityOnline   Modality = "ONLINE"
	ModalityInPerson Modality = "IN_PERSON"
)

var (
	ErrInvalidModality = errors.New("invalid modality")
	ErrInvalidDateTime = errors.New("invalid dateTime")
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
)

// ParseModality normalizes a client-supplied modality tag. PRESENCIAL
// is the legacy wire value for in-person lessons and stays accepted.
func ParseModality(s string) (Modality, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ONLINE":
		return ModalityOnline, nil
	case "IN_PERSON", "PRESENCIAL":
		return ModalityInPerson, nil
	default:
		return "", ErrInvalidModality
	}
}

// Lesson is a scheduled meeting between one student and one teacher.
// DateTime keeps the validated wire string so stored values round-trip
// exactly.
type Lesson struct {
	ID        int      `json:"id"`
	StudentID int      `json:"studentId"`
	TeacherID int      `json:"teacherId"`
	DateTime  string   `json:"dateTime"`
	Modality  Modality `json:"modality"`
}

func validDateTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
