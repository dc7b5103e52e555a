package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gym-registration-api/internal/service"
)

func (h *Handlers) listTrainees(w http.ResponseWriter, r *http.Request) error {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return err
	}
	pageSize, err := queryInt(r, "pageSize", 20)
	if err != nil {
		return err
	}

	trainees, total, err := h.svc.ListTrainees(r.Context(), page, pageSize)
	if err != nil {
		return err
	}

	data := make([]traineeJSON, len(trainees))
	for i := range trainees {
		data[i] = toTraineeJSON(&trainees[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":       data,
		"pagination": paginationJSON{Page: page, PageSize: pageSize, Total: total},
	})
	return nil
}

func (h *Handlers) createTrainee(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Timezone string `json:"timezone"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	t, err := h.svc.CreateTrainee(r.Context(), service.CreateTraineeInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Timezone: body.Timezone,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, toTraineeJSON(t))
	return nil
}

func (h *Handlers) getTrainee(w http.ResponseWriter, r *http.Request) error {
	t, err := h.svc.GetTrainee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toTraineeJSON(t))
	return nil
}

func (h *Handlers) updateTrainee(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Timezone *string `json:"timezone"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	t, err := h.svc.UpdateTrainee(r.Context(), chi.URLParam(r, "id"), service.UpdateTraineeInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Timezone: body.Timezone,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toTraineeJSON(t))
	return nil
}

func (h *Handlers) deleteTrainee(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteTrainee(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.Invalid(name + " must be a number")
	}
	return n, nil
}
