package main

import (
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title Workout Tracker API
// @version 1.0
// @description API for the exercise catalog, workout plans and logged workouts.
// @host localhost:8080
// @BasePath /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   true,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Info("starting workout tracker server...")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Info("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to database %q", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
		log.Debug("index creation process completed")
	}()

	// --- Archive Storage (optional) ---
	var archive storage.ObjectStorage
	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	switch {
	case errors.Is(err, storage.ErrStorageNotConfigured):
		log.Info("s3.bucket_name not set, completed workouts are reset without archiving")
	case err != nil:
		log.Fatalf("failed to initialize S3 storage: %v", err)
	default:
		archive = s3Storage
	}

	// --- Initialize Repositories ---
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	planRepo := mongo.NewMongoWorkoutPlanRepository(appDB)
	sessionRepo := mongo.NewMongoWorkoutSessionRepository(appDB)
	planExerciseRepo := mongo.NewMongoPlanExerciseRepository(appDB)
	completedWorkoutRepo := mongo.NewMongoCompletedWorkoutRepository(appDB)
	completedExerciseRepo := mongo.NewMongoCompletedExerciseRepository(appDB)

	// --- Initialize Services ---
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(planRepo, sessionRepo, planExerciseRepo, exerciseRepo)
	workoutService := service.NewWorkoutService(completedWorkoutRepo, completedExerciseRepo, sessionRepo, exerciseRepo, archive)

	// --- Initialize Gin Engine ---
	if log.GetLevel() < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := api.InitValidator(); err != nil {
		log.Fatalf("failed to register request validators: %v", err)
	}
	router := api.NewRouter(cfg.CORS)
	api.SetupRoutes(router, exerciseService, planService, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
		return
	}

	log.Info("server exiting")
}
