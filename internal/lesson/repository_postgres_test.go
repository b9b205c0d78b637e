package lesson

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO lessons").
		WithArgs(5, 3, "2025-06-15T14:30:00", "IN_PERSON").
		WillReturnRows(sqlmock.NewRows([]string{"lesson_id"}).AddRow(21))

	created, err := repo.Create(Lesson{
		StudentID: 5,
		TeacherID: 3,
		DateTime:  "2025-06-15T14:30:00",
		Modality:  ModalityInPerson,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 21 {
		t.Fatalf("expected assigned id 21, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByTeacherID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"lesson_id", "student_id", "teacher_id", "date_time", "modality"}).
		AddRow(1, 5, 3, "2025-06-15T14:30:00", "ONLINE").
		AddRow(2, 7, 3, "2025-06-16T10:00:00", "IN_PERSON")
	mock.ExpectQuery("WHERE teacher_id").WithArgs(3).WillReturnRows(rows)

	lessons, err := repo.ListByTeacherID(3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[1].Modality != ModalityInPerson {
		t.Fatalf("unexpected modality %q", lessons[1].Modality)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByStudentID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE student_id").WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"lesson_id", "student_id", "teacher_id", "date_time", "modality"}))

	lessons, err := repo.ListByStudentID(42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if lessons == nil || len(lessons) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lessons)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
