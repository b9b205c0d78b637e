package teacher

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"teacher_id", "user_id", "bio", "subjects"}).
		AddRow(3, 10, "bio", "{math,physics}")
	mock.ExpectQuery("WHERE user_id").WithArgs(10).WillReturnRows(rows)

	got, err := repo.GetByUserID(10)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.ID != 3 || len(got.Subjects) != 2 || got.Subjects[0] != "math" {
		t.Fatalf("unexpected teacher %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_DuplicateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"teacher_id", "user_id", "bio", "subjects"}).
		AddRow(1, 7, "existing", "{art}")
	mock.ExpectQuery("WHERE user_id").WithArgs(7).WillReturnRows(rows)

	if _, err := repo.Create(Teacher{UserID: 7}); err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
