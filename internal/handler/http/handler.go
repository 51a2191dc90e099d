package http

import (
	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler creates a Handler whose metrics live in their own registry,
// exposed at /metrics.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newMetrics(prometheus.NewRegistry()),
		logger:   logger,
	}
}
