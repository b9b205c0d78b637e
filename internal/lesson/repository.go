package lesson

import "sync"

type Repository interface {
	Create(l Lesson) (Lesson, error)
	ListByStudentID(studentID int) ([]Lesson, error)
	ListByTeacherID(teacherID int) ([]Lesson, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	lessons []Lesson
	nextID  int
}

func NewInMemoryRepository(seed []Lesson) *InMemoryRepository {
	repo := &InMemoryRepository{
		lessons: make([]Lesson, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, l := range seed {
		repo.lessons = append(repo.lessons, l)
		if l.ID > maxID {
			maxID = l.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(l Lesson) (Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == 0 {
		l.ID = r.nextID
		r.nextID++
	}

	r.lessons = append(r.lessons, l)
	return l, nil
}

func (r *InMemoryRepository) ListByStudentID(studentID int) ([]Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Lesson, 0)
	for _, l := range r.lessons {
		if l.StudentID == studentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByTeacherID(teacherID int) ([]Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Lesson, 0)
	for _, l := range r.lessons {
		if l.TeacherID == teacherID {
			out = append(out, l)
		}
	}
	return out, nil
}
