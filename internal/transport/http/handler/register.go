package handler

import (
	"encoding/json"
	"net/http"

	"github.com/moviesir-api/internal/application/register"
	"github.com/moviesir-api/internal/domain"
	"github.com/moviesir-api/internal/pkg/validate"
)

// RegisterHandler exposes the six registration stage endpoints.
type RegisterHandler struct {
	svc register.Service
}

func NewRegisterHandler(svc register.Service) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// Basic validates the submitted identity and duplicate status.
func (h *RegisterHandler) Basic(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterBasicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	identity, err := h.svc.Basic(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "basic info validated", Data: identity})
}

// CheckEmail reports whether the email is well-formed and free.
func (h *RegisterHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.CheckEmail(r.Context(), req.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "email is available"})
}

// SendCode issues a verification code and mails it out-of-band.
func (h *RegisterHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SendCode(r.Context(), req.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "verification code sent"})
}

// VerifyCode checks the submitted code against the issued one.
func (h *RegisterHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterVerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "email verified"})
}

// Preferences echoes the submitted genre and service sets.
func (h *RegisterHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	prefs, err := h.svc.Preferences(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "preferences saved", Data: prefs})
}

// Complete assembles and persists the final account record.
func (h *RegisterHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	account, err := h.svc.Complete(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Message: "registration complete", Data: account})
}
