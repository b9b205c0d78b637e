package teacher

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("teacher not found")
	ErrAlreadyExists = errors.New("teacher profile already exists for user")
)

type Repository interface {
	List() []Teacher
	GetByID(id int) (Teacher, error)
	GetByUserID(userID int) (Teacher, error)
	Create(t Teacher) (Teacher, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	teachers []Teacher
	nextID   int
}

func NewInMemoryRepository(seed []Teacher) *InMemoryRepository {
	repo := &InMemoryRepository{
		teachers: make([]Teacher, 0, len(seed)),
		nextID:   1,
	}

	maxID := 0
	for _, t := range seed {
		repo.teachers = append(repo.teachers, t)
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() []Teacher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teachers := make([]Teacher, len(r.teachers))
	copy(teachers, r.teachers)
	return teachers
}

func (r *InMemoryRepository) GetByID(id int) (Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teachers {
		if t.ID == id {
			return t, nil
		}
	}

	return Teacher{}, ErrNotFound
}

func (r *InMemoryRepository) GetByUserID(userID int) (Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}

	return Teacher{}, ErrNotFound
}

func (r *InMemoryRepository) Create(t Teacher) (Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teachers {
		if existing.UserID == t.UserID {
			return Teacher{}, ErrAlreadyExists
		}
	}

	if t.ID == 0 {
		t.ID = r.nextID
		r.nextID++
	}

	r.teachers = append(r.teachers, t)
	return t, nil
}
