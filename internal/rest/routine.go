package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gym-registration-api/internal/model"
	"gym-registration-api/internal/service"
)

func (h *Handlers) listRoutines(w http.ResponseWriter, r *http.Request) error {
	routines, err := h.svc.ListRoutines(r.Context(), r.URL.Query().Get("traineeId"))
	if err != nil {
		return err
	}
	out := make([]routineJSON, len(routines))
	for i := range routines {
		out[i] = toRoutineJSON(&routines[i])
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) createRoutine(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		UserID       string       `json:"userId"`
		Availability []model.Slot `json:"availability"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	rt, err := h.svc.CreateRoutine(r.Context(), service.CreateRoutineInput{
		UserID:       body.UserID,
		Availability: body.Availability,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, toRoutineJSON(rt))
	return nil
}

func (h *Handlers) getRoutine(w http.ResponseWriter, r *http.Request) error {
	rt, err := h.svc.GetRoutine(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toRoutineJSON(rt))
	return nil
}

func (h *Handlers) getTraineeRoutine(w http.ResponseWriter, r *http.Request) error {
	rt, err := h.svc.GetTraineeRoutine(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toRoutineJSON(rt))
	return nil
}

func (h *Handlers) updateTraineeRoutine(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Availability []model.Slot `json:"availability"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	rt, err := h.svc.UpdateTraineeRoutine(r.Context(), chi.URLParam(r, "id"), body.Availability)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toRoutineJSON(rt))
	return nil
}

func (h *Handlers) updateRoutine(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Availability []model.Slot `json:"availability"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	rt, err := h.svc.UpdateRoutine(r.Context(), chi.URLParam(r, "id"), body.Availability)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toRoutineJSON(rt))
	return nil
}

func (h *Handlers) deleteRoutine(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteRoutine(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
