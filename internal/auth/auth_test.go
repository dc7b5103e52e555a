package auth_test

import (
	"testing"
	"time"

	"gym-registration-api/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret-pass" {
		t.Fatal("password stored in the clear")
	}
	if !auth.CheckPassword(hash, "secret-pass") {
		t.Fatal("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong-pass") {
		t.Fatal("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("trainee-1", "t@example.com", "testsecret")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := auth.ParseToken(tok, "testsecret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.TraineeID != "trainee-1" {
		t.Errorf("expected trainee-1, got %s", claims.TraineeID)
	}
	if claims.Email != "t@example.com" {
		t.Errorf("expected t@example.com, got %s", claims.Email)
	}

	exp := claims.ExpiresAt.Time
	want := time.Now().Add(auth.TokenTTL)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v not near %v", exp, want)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tok, err := auth.MakeToken("trainee-1", "t@example.com", "testsecret")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}
	if _, err := auth.ParseToken(tok, "othersecret"); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := auth.ParseToken(raw, "testsecret"); err == nil {
			t.Errorf("garbage token %q accepted", raw)
		}
	}
}
