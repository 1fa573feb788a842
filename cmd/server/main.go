package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"alcyxob/irontrack/internal/api"
	"alcyxob/irontrack/internal/config"
	"alcyxob/irontrack/internal/logging"
	"alcyxob/irontrack/internal/repository/csvfile"
	"alcyxob/irontrack/internal/service"
	"alcyxob/irontrack/internal/stats"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: could not load config: %s", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.File, cfg.Log.ToStdout)
	log.Info("starting IronTrack server ...")

	// --- Workout Store ---
	store := csvfile.NewStore(cfg.Store.Path)
	if err := store.Initialize(context.Background()); err != nil {
		log.Fatalf("FATAL: could not initialize workout store at %s: %s", cfg.Store.Path, err)
	}
	log.Infof("workout store ready at %s", store.Path())

	// --- Services ---
	authService := service.NewAuthService(cfg.Auth)
	workoutService := service.NewWorkoutService(store)
	analyzer := stats.NewAnalyzer(store)

	if authService.Enabled() {
		log.Info("API authentication enabled")
	} else {
		log.Info("API authentication disabled (no password hash configured)")
	}

	// --- Router ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, authService, workoutService, analyzer)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}
