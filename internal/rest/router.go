// Package rest maps HTTP routes onto the shared resource handlers and shapes
// outcomes as status codes and JSON bodies.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"gym-registration-api/internal/service"
	"gym-registration-api/internal/session"
)

type Handlers struct {
	svc      *service.Service
	sessions *session.Issuer
}

func NewRouter(svc *service.Service, sessions *session.Issuer) http.Handler {
	h := &Handlers{svc: svc, sessions: sessions}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Welcome to the Gym Training Registration API"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// open routes, rate limited per IP
	rl := newRateLimiter(5, 10)
	r.Group(func(r chi.Router) {
		r.Use(rl.limit)
		r.Post("/sessions", handle(h.createSession))
		r.Post("/trainees", handle(h.createTrainee))
	})

	// everything else requires a session
	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/sessions", handle(h.checkSession))
		r.Delete("/sessions", handle(h.deleteSession))

		r.Get("/trainees", handle(h.listTrainees))
		r.Route("/trainees/{id}", func(r chi.Router) {
			r.Get("/", handle(h.getTrainee))
			r.Patch("/", handle(h.updateTrainee))
			r.Delete("/", handle(h.deleteTrainee))
		})

		r.Get("/workouts", handle(h.listWorkouts))
		r.Post("/workouts", handle(h.createWorkout))
		r.Route("/workouts/{id}", func(r chi.Router) {
			r.Get("/", handle(h.getWorkout))
			r.Patch("/", handle(h.updateWorkout))
			r.Delete("/", handle(h.deleteWorkout))
		})

		r.Get("/routines", handle(h.listRoutines))
		r.Post("/routines", handle(h.createRoutine))
		r.Get("/routines/trainee/{id}", handle(h.getTraineeRoutine))
		r.Patch("/routines/trainee/{id}", handle(h.updateTraineeRoutine))
		r.Route("/routines/{id}", func(r chi.Router) {
			r.Get("/", handle(h.getRoutine))
			r.Patch("/", handle(h.updateRoutine))
			r.Delete("/", handle(h.deleteRoutine))
		})

		r.Get("/registrations", handle(h.listRegistrations))
		r.Post("/registrations", handle(h.createRegistration))
		r.Route("/registrations/{id}", func(r chi.Router) {
			r.Get("/", handle(h.getRegistration))
			r.Patch("/", handle(h.updateRegistration))
			r.Delete("/", handle(h.deleteRegistration))
		})
	})

	return r
}
