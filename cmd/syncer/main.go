package main

import (
	"context"
	"fmt"

	"github.com/mwiersma/grippsync/internal/config"
	"github.com/mwiersma/grippsync/internal/gripp"
	handlerhttp "github.com/mwiersma/grippsync/internal/handler/http"
	"github.com/mwiersma/grippsync/internal/logger"
	"github.com/mwiersma/grippsync/internal/server"
	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/internal/store"
	"github.com/mwiersma/grippsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("grippsync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to mirror database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	uow := store.NewUnitOfWork(db, log)
	repos := store.NewRepositories(uow, log)

	client := gripp.NewClient(cfg.Gripp, log)
	queue := gripp.NewQueue(client, cfg.Queue, log)

	orchestrator := service.NewOrchestrator(queue, uow, repos, cfg.Sync, log)
	if err = orchestrator.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping sync status rows")
	}

	scheduler := workers.NewWorkers(
		workers.NewSyncWorker(ctx, orchestrator, cfg.Sync, log),
	)
	scheduler.Run()

	handler := handlerhttp.NewHandler(orchestrator, log)

	srv, err := server.NewServer(handler, cfg.Server, log,
		scheduler.Stop,
		cancel,
		queue.Close,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
