package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().AnErr("reason", err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// An undecodable body is reported like any other failed login.
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Info().AnErr("reason", err).Msg("invalid JSON was passed")
		writeError(w, r, service.ErrInvalidCredentials, "user login failed")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccess,
		Token:   token.SignedString,
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, http.StatusOK)
}
