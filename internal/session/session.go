// Package session issues, verifies, and revokes the signed tokens that
// authenticate trainees on both the REST and SOAP front ends.
package session

import (
	"context"
	"errors"
	"time"

	"gym-registration-api/internal/auth"
)

var (
	// ErrInvalid covers bad signatures, expired tokens, and garbage input.
	ErrInvalid = errors.New("session: invalid token")
	// ErrRevoked means the token was explicitly logged out.
	ErrRevoked = errors.New("session: token revoked")
)

// Identity is the trainee bound to a verified token.
type Identity struct {
	TraineeID string
	Email     string
}

// Revocations records logged-out tokens until they would have expired anyway.
type Revocations interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// Issuer signs and checks tokens against a shared secret and a revocation set.
// The revocation set is injected at construction so multiple instances can
// share one (e.g. Redis) instead of each keeping ambient process state.
type Issuer struct {
	secret  string
	revoked Revocations
}

func NewIssuer(secret string, revoked Revocations) *Issuer {
	return &Issuer{secret: secret, revoked: revoked}
}

func (i *Issuer) Issue(traineeID, email string) (string, error) {
	return auth.MakeToken(traineeID, email, i.secret)
}

// Verify rejects revoked tokens before checking the signature, so a revoked
// token fails the same way whether or not it has since expired.
func (i *Issuer) Verify(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalid
	}
	revoked, err := i.revoked.Contains(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	if revoked {
		return Identity{}, ErrRevoked
	}
	claims, err := auth.ParseToken(token, i.secret)
	if err != nil {
		return Identity{}, ErrInvalid
	}
	return Identity{TraineeID: claims.TraineeID, Email: claims.Email}, nil
}

// Revoke adds the token to the revocation set for its remaining lifetime.
// Revoking an already revoked token is a no-op; revoking a token this issuer
// never signed fails with ErrInvalid.
func (i *Issuer) Revoke(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, i.secret)
	if err != nil {
		return ErrInvalid
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return i.revoked.Add(ctx, token, ttl)
}
