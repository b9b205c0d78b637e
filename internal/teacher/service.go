package teacher

// ServiceInterface is implemented by *Service and by test doubles in
// packages that resolve teacher references.
type ServiceInterface interface {
	List() []Teacher
	GetByID(id int) (Teacher, error)
	GetByUserID(userID int) (Teacher, error)
	Create(t Teacher) (Teacher, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Teacher {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Teacher, error) {
	if id <= 0 {
		return Teacher{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) GetByUserID(userID int) (Teacher, error) {
	if userID <= 0 {
		return Teacher{}, ErrNotFound
	}
	return s.repo.GetByUserID(userID)
}

func (s *Service) Create(t Teacher) (Teacher, error) {
	if t.UserID <= 0 {
		return Teacher{}, ErrNotFound
	}
	return s.repo.Create(t)
}
