package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"gym-registration-api/internal/service"
)

func (h *Handlers) listRegistrations(w http.ResponseWriter, r *http.Request) error {
	regs, err := h.svc.ListRegistrations(r.Context())
	if err != nil {
		return err
	}
	out := make([]registrationJSON, len(regs))
	for i := range regs {
		out[i] = toRegistrationJSON(&regs[i])
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) createRegistration(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		EventID      string `json:"eventId"`
		UserID       string `json:"userId"`
		InviteeEmail string `json:"inviteeEmail"`
		StartTime    string `json:"startTime"`
		EndTime      string `json:"endTime"`
		Status       string `json:"status"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	in := service.CreateRegistrationInput{
		EventID:      body.EventID,
		UserID:       body.UserID,
		InviteeEmail: body.InviteeEmail,
		Status:       body.Status,
	}
	if body.StartTime != "" {
		start, err := parseTime("startTime", body.StartTime)
		if err != nil {
			return err
		}
		in.StartTime = start
	}
	if body.EndTime != "" {
		end, err := parseTime("endTime", body.EndTime)
		if err != nil {
			return err
		}
		in.EndTime = &end
	}

	g, err := h.svc.CreateRegistration(r.Context(), in)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, toRegistrationJSON(g))
	return nil
}

func (h *Handlers) getRegistration(w http.ResponseWriter, r *http.Request) error {
	g, err := h.svc.GetRegistration(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, toRegistrationJSON(g))
	return nil
}

func (h *Handlers) updateRegistration(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		EventID      *string `json:"eventId"`
		UserID       *string `json:"userId"`
		InviteeEmail *string `json:"inviteeEmail"`
		StartTime    *string `json:"startTime"`
		EndTime      *string `json:"endTime"`
		Status       *string `json:"status"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	in := service.UpdateRegistrationInput{
		EventID:      body.EventID,
		UserID:       body.UserID,
		InviteeEmail: body.InviteeEmail,
		Status:       body.Status,
	}
	if body.StartTime != nil {
		start, err := parseTime("startTime", *body.StartTime)
		if err != nil {
			return err
		}
		in.StartTime = &start
	}
	if body.EndTime != nil {
		// an empty string clears the end time
		var end *time.Time
		if *body.EndTime != "" {
			parsed, err := parseTime("endTime", *body.EndTime)
			if err != nil {
				return err
			}
			end = &parsed
		}
		in.EndTime = &end
	}

	g, err := h.svc.UpdateRegistration(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toRegistrationJSON(g))
	return nil
}

func (h *Handlers) deleteRegistration(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.DeleteRegistration(r.Context(), chi.URLParam(r, "id")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, service.Invalid(field + " must be an RFC 3339 timestamp")
	}
	return t, nil
}
