package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"luffi/internal/domain"
	"luffi/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyCredentials = errors.New("email and password are required")

// The placeholder token written next to the user record. A real identity
// backend would mint something verifiable here.
const sessionToken = "mock-token"

const adminPassword = "admin123"

// AuthService is a mock: any non-empty email/password pair yields a customer,
// the configured admin credential yields an admin. Nothing is verified against
// a real backend. Token and user record are persisted together and cleared
// together; a corrupt record degrades to anonymous.
type AuthService struct {
	Sessions   *repos.SessionRepo
	AdminEmail string
	Delay      time.Duration // simulated network latency; zero in tests

	adminHash []byte
}

func NewAuthService(sessions *repos.SessionRepo, adminEmail string, delay time.Duration) *AuthService {
	// Hashed at construction, compared on login. The credential itself is demo
	// scaffolding, not a secret.
	h, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	return &AuthService{Sessions: sessions, AdminEmail: adminEmail, Delay: delay, adminHash: h}
}

func (s *AuthService) persist(sid string, u domain.User) (*domain.User, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Put(sid, sessionToken, string(b)); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login fabricates a user record. It fails only on empty email or password,
// or when the session row cannot be written.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	if email == s.AdminEmail && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		return s.persist(sid, domain.User{ID: "1", Email: email, Name: "Admin User", Role: domain.RoleAdmin})
	}
	return s.persist(sid, domain.User{ID: "2", Email: email, Name: "Customer", Role: domain.RoleCustomer})
}

// Register fabricates a customer with a time-based id. It fails only when the
// session row cannot be written; credential checks live in the handler.
func (s *AuthService) Register(sid, email, password, name string) (*domain.User, error) {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	id := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return s.persist(sid, domain.User{ID: id, Email: email, Name: name, Role: domain.RoleCustomer})
}

// Logout clears the token and user record together. Clearing an absent
// session succeeds.
func (s *AuthService) Logout(sid string) error {
	return s.Sessions.Delete(sid)
}

// CurrentUser loads the persisted record for a session. A missing row means
// anonymous; a record that no longer parses is dropped and also reported as
// anonymous rather than surfaced as an error.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	row, ok, err := s.Sessions.Get(sid)
	if err != nil {
		return nil, err
	}
	if !ok || row.Token == "" {
		return nil, nil
	}
	var u domain.User
	if err := json.Unmarshal([]byte(row.UserJSON), &u); err != nil || u.ID == "" {
		_ = s.Sessions.Delete(sid)
		return nil, nil
	}
	return &u, nil
}
