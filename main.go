package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"rentroll/src/api"
	"rentroll/src/api/controllers"
	"rentroll/src/config"
	"rentroll/src/datasource"
	"rentroll/src/metrics"
	"rentroll/src/repositories"
	"rentroll/src/scheduler"
	"rentroll/src/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Service.LogLevel), cfg.Service.LogFile != "", cfg.Service.LogFile)

	errC, err := run(cfg, logger)
	if err != nil {
		logger.Errorf("Couldn't run: %v", err)
		return
	}

	if err := <-errC; err != nil {
		logger.Errorf("Error while running: %v", err)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	errC := make(chan error, 1)
	ctx := utils.WithLogger(context.Background(), logger)

	source, err := datasource.NewSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	store := repositories.NewRentRollRepository(nil)
	controller := controllers.NewController(store, source, m)

	// The service starts with an empty rent roll when the first load fails; the error is
	// reported by the view until a refresh succeeds.
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if _, err := controller.Refresh(loadCtx); err != nil {
		logger.Warnf("initial rent roll load failed: %v", err)
	}
	cancel()

	if cfg.DataSource.RefreshCron != "" {
		_, err := scheduler.NewScheduledTask(cfg.DataSource.RefreshCron, func(taskCtx context.Context) {
			taskCtx, cancel := context.WithTimeout(utils.WithLogger(taskCtx, logger), 30*time.Second)
			defer cancel()
			if _, err := controller.Refresh(taskCtx); err != nil {
				logger.Warnf("scheduled rent roll refresh failed: %v", err)
			}
		})
		if err != nil {
			return nil, err
		}
		logger.Infof("Scheduled rent roll refresh with cron %q", cfg.DataSource.RefreshCron)
	}

	server := api.NewServer(cfg, controller, m, logger)
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	go func() {
		logger.Infof("Starting server on port %s", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("An error raised while setting up server: %v", err)
			errC <- err
		}
	}()
	return errC, nil
}
