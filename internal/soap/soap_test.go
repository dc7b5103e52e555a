package soap_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"gym-registration-api/internal/service"
	"gym-registration-api/internal/session"
	"gym-registration-api/internal/soap"
	"gym-registration-api/internal/store"
)

// setupLocal builds an endpoint with no database behind it; only operations
// that fail before reaching storage can be exercised against it.
func setupLocal(t *testing.T) *httptest.Server {
	t.Helper()
	sessions := session.NewIssuer("testsecret", session.NewMemoryRevocations())
	svc := service.New(store.New(nil), sessions)
	srv := httptest.NewServer(soap.NewServer(svc, sessions).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func setupDB(t *testing.T) *httptest.Server {
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
	srv := httptest.NewServer(soap.NewServer(svc, sessions).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, body string) (int, string) {
	t.Helper()
	envelope := `<?xml version="1.0"?>` +
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>` +
		body +
		`</soap:Body></soap:Envelope>`
	resp, err := srv.Client().Post(srv.URL+"/soap", "text/xml", strings.NewReader(envelope))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func wantFault(t *testing.T, status int, body, code, msg string) {
	t.Helper()
	if status != http.StatusInternalServerError {
		t.Fatalf("expected status 500 for fault, got %d", status)
	}
	if !strings.Contains(body, "<faultcode>"+code+"</faultcode>") {
		t.Errorf("expected faultcode %s in %s", code, body)
	}
	if msg != "" && !strings.Contains(body, msg) {
		t.Errorf("expected faultstring %q in %s", msg, body)
	}
}

func TestUnknownOperation(t *testing.T) {
	srv := setupLocal(t)
	status, body := call(t, srv, `<FlyToTheMoon/>`)
	wantFault(t, status, body, "soap:Client", "unknown operation: FlyToTheMoon")
}

func TestMalformedEnvelope(t *testing.T) {
	srv := setupLocal(t)
	resp, err := srv.Client().Post(srv.URL+"/soap", "text/xml", strings.NewReader(`<this is not xml`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	wantFault(t, resp.StatusCode, string(raw), "soap:Client", "malformed SOAP envelope")
}

func TestMissingToken(t *testing.T) {
	srv := setupLocal(t)
	status, body := call(t, srv, `<ListWorkouts><token></token></ListWorkouts>`)
	wantFault(t, status, body, "soap:Client", "Invalid or missing token")
}

func TestBadToken(t *testing.T) {
	srv := setupLocal(t)
	status, body := call(t, srv, `<ListWorkouts><token>not.a.token</token></ListWorkouts>`)
	wantFault(t, status, body, "soap:Client", "Invalid token")
}

func TestWSDLServed(t *testing.T) {
	srv := setupLocal(t)
	resp, err := srv.Client().Get(srv.URL + "/soap?wsdl")
	if err != nil {
		t.Fatalf("get wsdl: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "GymRegistrationService") {
		t.Error("service definition missing from WSDL")
	}
	if !strings.Contains(string(raw), `targetNamespace="urn:gym-registration"`) {
		t.Error("target namespace missing from WSDL")
	}
}

// ----- operations against a real database -----

func createTraineeBody(name, email string) string {
	return fmt.Sprintf(
		`<CreateTrainee><trainee><name>%s</name><email>%s</email><password>testpass123</password></trainee></CreateTrainee>`,
		name, email,
	)
}

func TestCreateTraineeAndSession(t *testing.T) {
	srv := setupDB(t)

	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	status, body := call(t, srv, createTraineeBody("Soap Trainee", email))
	if status != http.StatusOK {
		t.Fatalf("create trainee: status %d (%s)", status, body)
	}
	if !strings.Contains(body, "<email>"+email+"</email>") {
		t.Fatalf("trainee missing from response: %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatal("password leaked in response")
	}

	status, body = call(t, srv, fmt.Sprintf(
		`<CreateSession><email>%s</email><password>testpass123</password></CreateSession>`, email))
	if status != http.StatusOK {
		t.Fatalf("create session: status %d (%s)", status, body)
	}
	if !strings.Contains(body, "<message>Login successful</message>") {
		t.Fatalf("login message missing: %s", body)
	}

	token := extract(t, body, "token")

	// the token authenticates a protected operation
	status, body = call(t, srv, fmt.Sprintf(
		`<CheckSession><token>%s</token></CheckSession>`, token))
	if status != http.StatusOK {
		t.Fatalf("check session: status %d (%s)", status, body)
	}
	if !strings.Contains(body, "<authenticated>true</authenticated>") {
		t.Fatalf("expected authenticated, got %s", body)
	}

	// and is rejected after logout
	status, body = call(t, srv, fmt.Sprintf(
		`<DeleteSession><token>%s</token></DeleteSession>`, token))
	if status != http.StatusOK {
		t.Fatalf("delete session: status %d (%s)", status, body)
	}
	status, body = call(t, srv, fmt.Sprintf(
		`<CheckSession><token>%s</token></CheckSession>`, token))
	wantFault(t, status, body, "soap:Client", "Token is revoked")
}

func TestCreateTraineeDuplicate(t *testing.T) {
	srv := setupDB(t)

	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	status, body := call(t, srv, createTraineeBody("First", email))
	if status != http.StatusOK {
		t.Fatalf("first create: status %d (%s)", status, body)
	}
	status, body = call(t, srv, createTraineeBody("Second", email))
	wantFault(t, status, body, "soap:Client", "Email already in use")
}

func TestWorkoutRoundTrip(t *testing.T) {
	srv := setupDB(t)

	email := fmt.Sprintf("test-%s@test.com", uuid.New().String()[:8])
	status, body := call(t, srv, createTraineeBody("Workout Owner", email))
	if status != http.StatusOK {
		t.Fatalf("create trainee: status %d (%s)", status, body)
	}
	status, body = call(t, srv, fmt.Sprintf(
		`<CreateSession><email>%s</email><password>testpass123</password></CreateSession>`, email))
	if status != http.StatusOK {
		t.Fatalf("create session: status %d (%s)", status, body)
	}
	token := extract(t, body, "token")

	name := fmt.Sprintf("Yoga-%s", uuid.New().String()[:8])
	status, body = call(t, srv, fmt.Sprintf(
		`<CreateWorkout><token>%s</token><workout><name>%s</name><duration>60</duration></workout></CreateWorkout>`,
		token, name))
	if status != http.StatusOK {
		t.Fatalf("create workout: status %d (%s)", status, body)
	}
	id := extract(t, body, "id")

	status, body = call(t, srv, fmt.Sprintf(
		`<GetWorkout><token>%s</token><id>%s</id></GetWorkout>`, token, id))
	if status != http.StatusOK {
		t.Fatalf("get workout: status %d (%s)", status, body)
	}
	if !strings.Contains(body, "<name>"+name+"</name>") {
		t.Errorf("workout name missing: %s", body)
	}
	if !strings.Contains(body, "<duration>60</duration>") {
		t.Errorf("workout duration missing: %s", body)
	}
}

// extract returns the text of the first occurrence of the named element.
func extract(t *testing.T, body, element string) string {
	t.Helper()
	open, close := "<"+element+">", "</"+element+">"
	i := strings.Index(body, open)
	j := strings.Index(body, close)
	if i < 0 || j < 0 || j <= i {
		t.Fatalf("element %s missing from %s", element, body)
	}
	return body[i+len(open) : j]
}
