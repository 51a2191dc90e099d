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

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "listing users failed")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "getting user failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Info().AnErr("reason", err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "updating user failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.UserService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "deleting user failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// userStats reports on the URLs of the caller, identified by the auth gate.
func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteMessage(w, app.MsgTokenInvalid, http.StatusUnauthorized)
		return
	}

	stats, err := h.services.UserService.Stats(ctx, userID)
	if err != nil {
		writeError(w, r, err, "collecting user stats failed")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
