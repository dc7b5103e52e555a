package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"gym-registration-api/internal/rest"
	"gym-registration-api/internal/service"
	"gym-registration-api/internal/session"
	"gym-registration-api/internal/store"
)

func setup(t *testing.T) *httptest.Server {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	secret := os.Getenv("JWT_SECRET")
	if dbURL == "" || secret == "" {
		t.Skip("DATABASE_URL or JWT_SECRET not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)
	if migration, err := os.ReadFile("../../db/migrations/001_init.sql"); err == nil {
		_, _ = pool.Exec(context.Background(), string(migration))
	}

	sessions := session.NewIssuer(secret, session.NewMemoryRevocations())
	svc := service.New(store.New(pool), sessions)
	srv := httptest.NewServer(rest.NewRouter(svc, sessions))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func register(t *testing.T, srv *httptest.Server) (id, email string) {
	t.Helper()
	email = fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	resp, body := doJSON(t, srv, http.MethodPost, "/trainees", "", map[string]any{
		"name": "Test Trainee", "email": email, "password": "testpass123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create trainee: status %d (%v)", resp.StatusCode, body)
	}
	return body["id"].(string), email
}

func login(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	resp, body := doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"email": email, "password": "testpass123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d (%v)", resp.StatusCode, body)
	}
	if body["message"] != "Login successful" {
		t.Fatalf("unexpected login message %v", body["message"])
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("empty token")
	}
	return tok
}

func TestWorkoutFlow(t *testing.T) {
	srv := setup(t)

	_, email := register(t, srv)
	tok := login(t, srv, email)

	name := fmt.Sprintf("HIIT-%s", uuid.New().String()[:8])
	resp, created := doJSON(t, srv, http.MethodPost, "/workouts", tok, map[string]any{
		"name": name, "duration": 45,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create workout: status %d (%v)", resp.StatusCode, created)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/workouts", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	listResp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	defer listResp.Body.Close()
	var workouts []map[string]any
	if err := json.NewDecoder(listResp.Body).Decode(&workouts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	matches := 0
	for _, w := range workouts {
		if w["name"] == name {
			matches++
			if w["duration"] != float64(45) {
				t.Errorf("expected duration 45, got %v", w["duration"])
			}
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one workout named %s, found %d", name, matches)
	}

	// logout, then the same token is rejected
	resp, body := doJSON(t, srv, http.MethodDelete, "/sessions", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d (%v)", resp.StatusCode, body)
	}
	resp, body = doJSON(t, srv, http.MethodGet, "/workouts", tok, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d (%v)", resp.StatusCode, body)
	}
	if body["error"] != "Token is revoked" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestAuthErrors(t *testing.T) {
	srv := setup(t)

	resp, body := doJSON(t, srv, http.MethodGet, "/workouts", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	if body["error"] != "Authorization token missing" {
		t.Errorf("unexpected error %v", body["error"])
	}

	resp, body = doJSON(t, srv, http.MethodGet, "/workouts", "not.a.token", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for bad token, got %d", resp.StatusCode)
	}
	if body["error"] != "Invalid token" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := setup(t)

	_, email := register(t, srv)
	resp, body := doJSON(t, srv, http.MethodPost, "/sessions", "", map[string]any{
		"email": email, "password": "wrongpassword",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["error"] != "Invalid credentials" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestTraineeListShape(t *testing.T) {
	srv := setup(t)

	_, email := register(t, srv)
	tok := login(t, srv, email)

	resp, body := doJSON(t, srv, http.MethodGet, "/trainees?page=1&pageSize=5", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list trainees: status %d (%v)", resp.StatusCode, body)
	}
	pagination, ok := body["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("missing pagination in %v", body)
	}
	if pagination["page"] != float64(1) || pagination["pageSize"] != float64(5) {
		t.Errorf("unexpected pagination %v", pagination)
	}
	if _, ok := body["data"].([]any); !ok {
		t.Fatalf("missing data in %v", body)
	}
}

func TestGetTraineeNotFound(t *testing.T) {
	srv := setup(t)

	_, email := register(t, srv)
	tok := login(t, srv, email)

	resp, body := doJSON(t, srv, http.MethodGet, "/trainees/"+uuid.New().String(), tok, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body["error"] != "Trainee not found" {
		t.Errorf("unexpected error %v", body["error"])
	}
}

func TestCheckSession(t *testing.T) {
	srv := setup(t)

	id, email := register(t, srv)
	tok := login(t, srv, email)

	resp, body := doJSON(t, srv, http.MethodGet, "/sessions", tok, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check session: status %d (%v)", resp.StatusCode, body)
	}
	if body["authenticated"] != true {
		t.Errorf("expected authenticated true, got %v", body["authenticated"])
	}
	trainee, ok := body["trainee"].(map[string]any)
	if !ok || trainee["id"] != id {
		t.Errorf("unexpected trainee %v", body["trainee"])
	}
}
