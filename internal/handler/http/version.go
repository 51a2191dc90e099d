package http

import (
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Build:   buildInfo.BuildVersion(),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}, http.StatusOK)
}
