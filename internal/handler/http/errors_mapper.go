package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// errorResponses is matched in order. Specific conflicts come before
// store.ErrConflict, which they wrap.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	{store.ErrNameAlreadyExists, http.StatusBadRequest, app.MsgUserNameAlreadyExists},
	{store.ErrConflict, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrUserDoesNotExist, http.StatusBadRequest, app.MsgUserDoesNotExist},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenExpired},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, app.MsgTokenInvalid},
	{service.ErrResetLinkInvalid, http.StatusBadRequest, app.MsgResetLinkInvalid},
}

// responseFromError returns the status and client-facing message for err.
// Anything unknown, including store and mail failures, is a generic 500.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgServerError
}

// writeError logs err with the request logger and writes the mapped
// {"message": ...} response. Internal details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Info().AnErr("reason", err).Int("status", status).Msg(msg)
	}

	utils.WriteMessage(w, message, status)
}
