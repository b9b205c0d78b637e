package teacher

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listTeachersQuery = `
		SELECT teacher_id, user_id, bio, subjects
		FROM teachers
		ORDER BY teacher_id
	`
	getTeacherByIDQuery = `
		SELECT teacher_id, user_id, bio, subjects
		FROM teachers
		WHERE teacher_id = $1
	`
	getTeacherByUserIDQuery = `
		SELECT teacher_id, user_id, bio, subjects
		FROM teachers
		WHERE user_id = $1
	`
	insertTeacherQuery = `
		INSERT INTO teachers (user_id, bio, subjects)
		VALUES ($1, $2, $3)
		RETURNING teacher_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Teacher {
	rows, err := r.db.Query(listTeachersQuery)
	if err != nil {
		return []Teacher{}
	}
	defer rows.Close()

	teachers := make([]Teacher, 0)
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			continue
		}
		teachers = append(teachers, t)
	}

	return teachers
}

func (r *PostgresRepository) GetByID(id int) (Teacher, error) {
	row := r.db.QueryRow(getTeacherByIDQuery, id)
	t, err := scanTeacher(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, err
	}

	return t, nil
}

func (r *PostgresRepository) GetByUserID(userID int) (Teacher, error) {
	row := r.db.QueryRow(getTeacherByUserIDQuery, userID)
	t, err := scanTeacher(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, err
	}

	return t, nil
}

func (r *PostgresRepository) Create(t Teacher) (Teacher, error) {
	if _, err := r.GetByUserID(t.UserID); err == nil {
		return Teacher{}, ErrAlreadyExists
	} else if err != ErrNotFound {
		return Teacher{}, err
	}

	var id int
	err := r.db.QueryRow(
		insertTeacherQuery,
		t.UserID,
		t.Bio,
		pq.Array(t.Subjects),
	).Scan(&id)
	if err != nil {
		return Teacher{}, err
	}

	t.ID = id
	return t, nil
}

func scanTeacher(scanner rowScanner) (Teacher, error) {
	t := Teacher{}
	var bio sql.NullString
	if err := scanner.Scan(
		&t.ID,
		&t.UserID,
		&bio,
		pq.Array(&t.Subjects),
	); err != nil {
		return Teacher{}, err
	}

	if bio.Valid {
		t.Bio = bio.String
	}
	return t, nil
}
