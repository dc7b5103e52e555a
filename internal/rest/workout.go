package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gym-registration-api/internal/service"
)

func (h *Handlers) listWorkouts(w http.ResponseWriter, r *http.Request) error {
	workouts, err := h.svc.ListWorkouts(r.Context())
	if err != nil {
		return err
	}
	out := make([]workoutJSON, len(workouts))
	for i := range workouts {
		out[i] = toWorkoutJSON(&workouts[i])
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) createWorkout(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Name        string `json:"name"`
		Duration    int    `json:"duration"`
		Description string `json:"description"`
		Color       string `json:"color"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	wk, err := h.svc.CreateWorkout(r.Context(), service.CreateWorkoutInput{
		Name:        body.Name,
		Duration:    body.Duration,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, toWorkoutJSON(wk))
	return nil
}

func (h *Handlers) getWorkout(w http.ResponseWriter, r *http.Request) error {
	wk, err := h.svc.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toWorkoutJSON(wk))
	return nil
}

func (h *Handlers) updateWorkout(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Name        *string `json:"name"`
		Duration    *int    `json:"duration"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	wk, err := h.svc.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), service.UpdateWorkoutInput{
		Name:        body.Name,
		Duration:    body.Duration,
		Description: body.Description,
		Color:       body.Color,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toWorkoutJSON(wk))
	return nil
}

func (h *Handlers) deleteWorkout(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteWorkout(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
