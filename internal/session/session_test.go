package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gym-registration-api/internal/session"
)

func newIssuer() *session.Issuer {
	return session.NewIssuer("testsecret", session.NewMemoryRevocations())
}

func TestIssueAndVerify(t *testing.T) {
	iss := newIssuer()
	tok, err := iss.Issue("trainee-1", "t@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := iss.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.TraineeID != "trainee-1" || id.Email != "t@example.com" {
		t.Errorf("unexpected identity %+v", id)
	}
}

func TestVerifyRevoked(t *testing.T) {
	iss := newIssuer()
	tok, err := iss.Issue("trainee-1", "t@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := iss.Revoke(context.Background(), tok); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := iss.Verify(context.Background(), tok); !errors.Is(err, session.ErrRevoked) {
		t.Fatalf("expected ErrRevoked, got %v", err)
	}

	// revoking again is a no-op
	if err := iss.Revoke(context.Background(), tok); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	iss := newIssuer()
	for _, raw := range []string{"", "not.a.token"} {
		if _, err := iss.Verify(context.Background(), raw); !errors.Is(err, session.ErrInvalid) {
			t.Errorf("token %q: expected ErrInvalid, got %v", raw, err)
		}
	}
}

func TestRevokeForeignToken(t *testing.T) {
	iss := newIssuer()
	other := session.NewIssuer("othersecret", session.NewMemoryRevocations())
	tok, err := other.Issue("trainee-1", "t@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := iss.Revoke(context.Background(), tok); !errors.Is(err, session.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestMemoryRevocationsExpiry(t *testing.T) {
	m := session.NewMemoryRevocations()
	ctx := context.Background()

	if err := m.Add(ctx, "expired", -time.Second); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, _ := m.Contains(ctx, "expired"); ok {
		t.Fatal("expired entry retained")
	}

	if err := m.Add(ctx, "live", time.Hour); err != nil {
		t.Fatalf("add: %v", err)
	}
	if ok, _ := m.Contains(ctx, "live"); !ok {
		t.Fatal("live entry missing")
	}
}
