package services

import (
	"encoding/json"
	"time"

	"perfumeshop/internal/domain"
	"perfumeshop/internal/repos"
	"perfumeshop/internal/store"
)

// authKey is the single local-storage key holding the session blob.
const authKey = "auth"

// AuthService keeps the signed-in user in local storage. The sign-in flow
// itself is a demo stub: credentials are never verified, every login
// resolves to the seeded admin account after a simulated network delay.
type AuthService struct {
	Local *repos.LocalRepo
	Delay time.Duration
}

// Restore reads the persisted session at startup. When none exists it
// signs in the demo user and persists the blob, matching first-run
// behavior of the original screens.
func (s *AuthService) Restore() (domain.Session, error) {
	raw, ok, err := s.Local.Get(authKey)
	if err != nil {
		return domain.Session{}, err
	}
	if ok {
		var sess domain.Session
		if err := json.Unmarshal([]byte(raw), &sess); err != nil {
			return domain.Session{}, err
		}
		return sess, nil
	}
	sess := domain.Session{User: store.SeedUser(), IsAuthenticated: true}
	if err := s.save(sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Login simulates the backend round trip, then signs in the demo user.
// Credentials are accepted as-is; nothing checks them.
func (s *AuthService) Login(email, password string) (domain.Session, error) {
	_ = email
	_ = password
	time.Sleep(s.Delay)
	sess := domain.Session{User: store.SeedUser(), IsAuthenticated: true}
	if err := s.save(sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

func (s *AuthService) Logout() error {
	return s.Local.Delete(authKey)
}

// HasPermission mirrors the screen-side capability check: admins can do
// everything, otherwise the list must name the capability or "all".
func (s *AuthService) HasPermission(u domain.User, perm string) bool {
	if u.Role == "Admin" {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm || p == domain.PermissionAll {
			return true
		}
	}
	return false
}

func (s *AuthService) save(sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Local.Set(authKey, string(b))
}
