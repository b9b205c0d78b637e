package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password", "role"}).
		AddRow(3, "Ana", "ana@x.com", "hash", "STUDENT")
	mock.ExpectQuery("FROM users").WithArgs("ana@x.com").WillReturnRows(rows)

	u, err := repo.GetByEmail("ana@x.com")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.ID != 3 || u.Role != RoleStudent {
		t.Fatalf("unexpected user %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password", "role"}))

	if _, err := repo.GetByID(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").
		WithArgs("N", "n@x.com", "pw", 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(8, User{Name: "N", Email: "n@x.com", Password: "pw"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for zero affected rows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Ana", "ana@x.com", "hash", "TEACHER").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(11))

	created, err := repo.Create(User{Name: "Ana", Email: "ana@x.com", Password: "hash", Role: RoleTeacher})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("expected assigned id 11, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
