package service

import (
	"context"
	"errors"

	"gym-registration-api/internal/auth"
	"gym-registration-api/internal/model"
	"gym-registration-api/internal/session"
	"gym-registration-api/internal/store"
)

// Login checks credentials and issues a session token. Unknown email and
// wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.Trainee, error) {
	if email == "" || password == "" {
		return "", nil, Invalid("email and password are required")
	}
	t, err := s.store.TraineeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, Unauthenticated("Invalid credentials")
		}
		return "", nil, Internal(err)
	}
	if !auth.CheckPassword(t.PasswordHash, password) {
		return "", nil, Unauthenticated("Invalid credentials")
	}
	tok, err := s.sessions.Issue(t.ID, t.Email)
	if err != nil {
		return "", nil, Internal(err)
	}
	t.PasswordHash = ""
	return tok, t, nil
}

// Logout revokes the exact token presented.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		if errors.Is(err, session.ErrInvalid) {
			return Unauthenticated("Invalid token")
		}
		return Internal(err)
	}
	return nil
}
