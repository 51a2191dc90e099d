package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/handler"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/mail"
	"github.com/MKhiriev/go-shortener-users/internal/server"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/internal/workers"
	"github.com/MKhiriev/go-shortener-users/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-shortener-users")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sender, err := mail.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	services, err := service.NewServices(storages, sender, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewResetTokenCleaner(storages.ResetTokenRepository, cfg.Workers, log),
	)
	workersDone := make(chan struct{})
	go func() {
		background.Run(ctx)
		close(workersDone)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
		stop()
	}

	<-workersDone
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Println(app.MsgBanner)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
