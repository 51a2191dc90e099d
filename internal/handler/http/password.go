package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().AnErr("reason", err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err, "password reset request failed")
		return
	}

	utils.WriteMessage(w, app.MsgResetEmailSent, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().AnErr("reason", err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token := chi.URLParam(r, "token")
	if err := h.services.PasswordResetService.ResetPassword(r.Context(), token, req.NewPassword); err != nil {
		writeError(w, r, err, "password reset failed")
		return
	}

	log.Info().Msg("password reset")
	utils.WriteMessage(w, app.MsgPasswordResetDone, http.StatusOK)
}
