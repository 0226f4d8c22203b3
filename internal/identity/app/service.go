package app

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/farmconnect/marketplace/internal/identity/domain"
)

var (
	ErrMissingFields      = errors.New("all fields required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrAdminRegistration  = errors.New("admin accounts cannot be created from registration")
)

// SessionStore persists only the logged-in user; the user list itself
// lives in memory for the process lifetime.
type SessionStore interface {
	LoadUser() (domain.User, bool)
	SaveUser(user domain.User) error
	ClearUser() error
}

// Service is the identity shim the order engine takes attribution
// from. It never authenticates beyond the demo plaintext contract.
type Service struct {
	mu      sync.Mutex
	store   SessionStore
	log     *slog.Logger
	users   []domain.User
	current *domain.User
}

func NewService(store SessionStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	s := &Service{store: store, log: log, users: domain.SeedUsers()}
	if user, ok := store.LoadUser(); ok {
		s.current = &user
	}
	return s
}

// Login matches email case-insensitively against active users.
func (s *Service) Login(email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password && u.Status == "active" {
			s.current = &u
			if err := s.store.SaveUser(u); err != nil {
				s.log.Error("session persist failed", "err", err)
			}
			return u, nil
		}
	}
	return domain.User{}, ErrInvalidCredentials
}

func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.store.ClearUser(); err != nil {
		s.log.Error("session clear failed", "err", err)
	}
}

// NewUser is the registration input; Role defaults to buyer.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

func (s *Service) Register(in NewUser) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return domain.User{}, ErrMissingFields
	}

	role := domain.Role(strings.ToLower(string(in.Role)))
	if role == "" {
		role = domain.RoleBuyer
	}
	if role == domain.RoleAdmin {
		return domain.User{}, ErrAdminRegistration
	}
	if !role.Valid() {
		role = domain.RoleBuyer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return domain.User{}, ErrEmailTaken
		}
	}

	user := domain.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  in.Password,
		Role:      role,
		Status:    "active",
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// CurrentUser reports the logged-in user, if any.
func (s *Service) CurrentUser() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// HasRole gates role-restricted actions.
func (s *Service) HasRole(role domain.Role) bool {
	u, ok := s.CurrentUser()
	return ok && u.Role == role
}
