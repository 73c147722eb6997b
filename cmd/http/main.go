package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cperault/clinical-screener-backend/internal/app/config"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/controllers"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/middlewares"
	"github.com/cperault/clinical-screener-backend/internal/app/delivery/http/routers"
	"github.com/cperault/clinical-screener-backend/internal/app/drivers/database"
	"github.com/cperault/clinical-screener-backend/internal/app/drivers/logger"
	"github.com/cperault/clinical-screener-backend/internal/app/services/core/questions"
	"github.com/cperault/clinical-screener-backend/internal/app/services/core/scoring"
	"github.com/cperault/clinical-screener-backend/internal/app/services/core/screeners"
	"github.com/cperault/clinical-screener-backend/internal/app/services/core/submissions"
	sharedredis "github.com/cperault/clinical-screener-backend/internal/app/services/shared/redis"
	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := bootstrap.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	questionRepository := questions.NewQuestionPostgresRepository(bootstrap.PostgresDB)
	questionUsecase := questions.NewQuestionUsecase(questionRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	scoringService := scoring.NewScoringService(questionRepository, bootstrap.Logger)

	submissionRepository := submissions.NewSubmissionPostgresRepository(bootstrap.PostgresDB)
	submissionUsecase := submissions.NewSubmissionUsecase(submissionRepository, questionUsecase, scoringService, bootstrap.Logger)

	screenerUsecase := screeners.NewScreenerUsecase(bootstrap.InternalConfig)

	questionController := controllers.NewQuestionController(bootstrap.Logger, questionUsecase)
	submissionController := controllers.NewSubmissionController(bootstrap.Logger, submissionUsecase)
	screenerController := controllers.NewScreenerController(bootstrap.Logger, screenerUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		questionController,
		submissionController,
		screenerController,
	)
}
