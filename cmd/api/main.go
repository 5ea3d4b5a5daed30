package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/config"
	"github.com/noah-isme/simak-go-api/internal/database"
	"github.com/noah-isme/simak-go-api/internal/handler"
	"github.com/noah-isme/simak-go-api/internal/middleware"
	"github.com/noah-isme/simak-go-api/internal/models"
	"github.com/noah-isme/simak-go-api/internal/repository"
	"github.com/noah-isme/simak-go-api/internal/router"
	"github.com/noah-isme/simak-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	var studentRepo repository.StudentRepository
	var userRepo repository.UserRepository

	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		if err := db.AutoMigrate(&models.Student{}, &models.User{}); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		studentRepo = repository.NewGormStudentRepository(db)
		userRepo = repository.NewGormUserRepository(db)
	default:
		studentRepo = repository.NewJSONStudentRepository(cfg.StudentsFile, logger)
		userRepo = repository.NewJSONUserRepository(cfg.UsersFile, logger)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := service.RegisterStudentValidations(validate); err != nil {
		log.Fatalf("failed to register validations: %v", err)
	}

	authService := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionTTL, cfg.AdminUsername, cfg.AdminPassword, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	queryService := service.NewQueryService(studentRepo, logger)
	dashboardService := service.NewDashboardService(studentRepo, logger)

	if err := authService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatalf("failed to seed administrator account: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService, validate, cfg.AppName, logger)
	studentHandler := handler.NewStudentHandler(studentService, queryService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       authHandler,
		StudentHandler:    studentHandler,
		DashboardHandler:  dashboardHandler,
		SessionMiddleware: middleware.SessionProtected(cfg.SessionSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
