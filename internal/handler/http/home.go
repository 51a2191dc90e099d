package http

import (
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
)

func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(app.MsgBanner))
}
