package lesson

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertLessonQuery = `
		INSERT INTO lessons (student_id, teacher_id, date_time, modality)
		VALUES ($1, $2, $3, $4)
		RETURNING lesson_id
	`
	listByStudentQuery = `
		SELECT lesson_id, student_id, teacher_id, date_time, modality
		FROM lessons
		WHERE student_id = $1
	`
	listByTeacherQuery = `
		SELECT lesson_id, student_id, teacher_id, date_time, modality
		FROM lessons
		WHERE teacher_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(l Lesson) (Lesson, error) {
	var id int
	err := r.db.QueryRow(
		insertLessonQuery,
		l.StudentID,
		l.TeacherID,
		l.DateTime,
		string(l.Modality),
	).Scan(&id)
	if err != nil {
		return Lesson{}, err
	}

	l.ID = id
	return l, nil
}

func (r *PostgresRepository) ListByStudentID(studentID int) ([]Lesson, error) {
	return r.list(listByStudentQuery, studentID)
}

func (r *PostgresRepository) ListByTeacherID(teacherID int) ([]Lesson, error) {
	return r.list(listByTeacherQuery, teacherID)
}

func (r *PostgresRepository) list(query string, id int) ([]Lesson, error) {
	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]Lesson, 0)
	for rows.Next() {
		var l Lesson
		var modality string
		if err := rows.Scan(&l.ID, &l.StudentID, &l.TeacherID, &l.DateTime, &modality); err != nil {
			return nil, err
		}
		l.Modality = Modality(modality)
		lessons = append(lessons, l)
	}

	return lessons, rows.Err()
}
