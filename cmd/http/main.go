package main

import (
	"context"
	"continuity-engine/internal/app/config"
	"continuity-engine/internal/app/delivery/http/middlewares"
	"continuity-engine/internal/app/delivery/http/routers"
	"continuity-engine/internal/app/drivers/database"
	"continuity-engine/internal/app/drivers/logger"
	"continuity-engine/internal/app/drivers/messaging"
	"continuity-engine/internal/app/services/core/continuity"
	"continuity-engine/internal/app/services/core/enrollments"
	"continuity-engine/internal/app/services/core/metrics"
	"continuity-engine/internal/app/services/core/observations"
	"continuity-engine/internal/app/services/core/patients"
	"continuity-engine/internal/app/services/core/programs"
	"continuity-engine/internal/app/services/core/suggestions"
	"continuity-engine/internal/app/services/core/templates"
	"continuity-engine/internal/app/services/shared/eventqueue"
	"continuity-engine/internal/app/services/shared/locker"
	"continuity-engine/internal/app/services/shared/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logrusLogger := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrusLogger.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQConnection(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrusLogger.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrusLogger.Fatalf("Error while closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	catalogCacheTTL := time.Duration(bootstrap.InternalConfig.Engine.CatalogCacheTTLInMinutes) * time.Minute

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Engine.SuggestionEventQueue)
	if err != nil {
		log.Fatalf("Failed to initialize suggestion event queue: %v", err)
	}

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Repositories
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig)
	observationMongoRepository := observations.NewObservationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig)
	templateMongoRepository := templates.NewTemplateMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig, redisRepository, catalogCacheTTL, bootstrap.Logger)
	programMongoRepository := programs.NewProgramMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig, redisRepository, catalogCacheTTL, bootstrap.Logger)
	metricMongoRepository := metrics.NewMetricMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig, redisRepository, catalogCacheTTL, bootstrap.Logger)
	suggestionMongoRepository := suggestions.NewSuggestionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig)
	enrollmentMongoRepository := enrollments.NewEnrollmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig)

	// Metric resolver
	metricResolverUsecase := observations.NewMetricResolverUsecase(patientMongoRepository, observationMongoRepository, bootstrap.Logger)

	// Continuity
	continuityUsecase := continuity.NewContinuityUsecase(metricResolverUsecase, templateMongoRepository, metricMongoRepository, suggestionMongoRepository, eventPublisher, bootstrap.Logger)
	continuityController := continuity.NewContinuityController(bootstrap.Logger, continuityUsecase, bootstrap.InternalConfig)

	// Suggestion
	suggestionUsecase := suggestions.NewSuggestionUsecase(
		suggestionMongoRepository,
		patientMongoRepository,
		programMongoRepository,
		enrollmentMongoRepository,
		lockerService,
		eventPublisher,
		bootstrap.Logger,
	)
	suggestionController := suggestions.NewSuggestionController(bootstrap.Logger, suggestionUsecase)

	// Enrollment
	enrollmentUsecase := enrollments.NewEnrollmentUsecase(enrollmentMongoRepository, patientMongoRepository, bootstrap.Logger)
	enrollmentController := enrollments.NewEnrollmentController(bootstrap.Logger, enrollmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		continuityController,
		suggestionController,
		enrollmentController,
	)
}
