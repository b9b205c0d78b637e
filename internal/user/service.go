package user

import "golang.org/x/crypto/bcrypt"

// ServiceInterface is implemented by *Service and by test doubles in
// packages that depend on user lookups.
type ServiceInterface interface {
	List() []User
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Update(id int, newValues User) (User, error)
	Register(user User) (User, error)
	Authenticate(email, password string) (User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

// Update loads the user by id and overwrites name, email and password
// with the given values. This is a full overwrite, not a patch: every
// field replaces the stored one even when empty. Id and role are never
// touched. When the id does not resolve, no write happens and the
// returned error carries the fixed "User not found for id: {id}"
// message.
func (s *Service) Update(id int, newValues User) (User, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return User{}, &NotFoundError{ID: id}
		}
		return User{}, err
	}

	existing.Name = newValues.Name
	existing.Email = newValues.Email
	existing.Password = newValues.Password

	return s.repo.Update(id, existing)
}

func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.Password = string(hashed)
	return s.repo.Create(user)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}
