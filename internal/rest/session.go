package rest

import (
	"net/http"
)

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &body); err != nil {
		return err
	}

	token, _, err := h.svc.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
	return nil
}

func (h *Handlers) deleteSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.Logout(r.Context(), tokenFrom(r.Context())); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
	return nil
}

func (h *Handlers) checkSession(w http.ResponseWriter, r *http.Request) error {
	id := identityFrom(r.Context())
	t, err := h.svc.GetTrainee(r.Context(), id.TraineeID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"trainee":       toTraineeJSON(t),
	})
	return nil
}
