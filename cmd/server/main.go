package main

import (
	"log"
	"time"

	"github.com/ElZypix/MusicSchool-DB-Admin/internal/application"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/config"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/domain"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/email"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/infrastructure/db"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/infrastructure/repository"
	handlers "github.com/ElZypix/MusicSchool-DB-Admin/internal/interfaces/http"
	"github.com/ElZypix/MusicSchool-DB-Admin/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := domain.ValidateCatalogRegistry(); err != nil {
		log.Fatalf("Error validating catalog registry: %v", err)
	}

	appLogger := logger.New(logger.LevelInfo)

	database, err := db.New(cfg.GetDBConnString(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()
	appLogger.Info("Servidor", "conexión a la base de datos establecida")

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept," + handlers.HeaderSessionToken,
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Email Client
	var emailClient *email.Client
	if cfg.SMTPHost != "" {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			appLogger.Warn("Servidor", "cliente de email no disponible: %v", err)
			emailClient = nil // Continuar sin email
		}
	}

	// Repositorios
	userRepo := repository.NewUserRepository(database)
	personRepo := repository.NewPersonRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	catalogRepo := repository.NewCatalogRepository(database)
	auditRepo := repository.NewAuditRepository(database)

	// Autenticación y sesiones
	sessions := application.NewSessionManager(8 * time.Hour)
	authService := application.NewAuthService(userRepo, auditRepo, sessions, appLogger)
	authHandler := handlers.NewAuthHandler(authService)

	// Personas
	personService := application.NewPersonService(personRepo, userRepo, auditRepo, emailClient, appLogger)
	personHandler := handlers.NewPersonHandler(personService)

	// Pagos
	paymentService := application.NewPaymentService(paymentRepo, auditRepo, appLogger)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Catálogos
	catalogService := application.NewCatalogService(catalogRepo, auditRepo, appLogger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	stateHandler := handlers.NewModuleStateHandler(sessions)

	sessionMW := handlers.NewSessionMiddleware(authService)

	api := app.Group("/api")

	// Autenticación
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Put("/password", sessionMW, authHandler.ChangePassword)

	// Usuarios
	usuarios := api.Group("/usuarios", sessionMW)
	usuarios.Patch("/:id/estado", authHandler.UpdateAccountStatus)

	// Personas
	personas := api.Group("/personas", sessionMW)
	personas.Get("/", personHandler.List)
	personas.Get("/alumnos", personHandler.ListStudents)
	personas.Get("/:id", personHandler.Get)
	personas.Post("/", personHandler.Create)
	personas.Put("/:id", personHandler.Update)
	personas.Delete("/:id", personHandler.Delete)

	// Pagos
	pagos := api.Group("/pagos", sessionMW)
	pagos.Get("/", paymentHandler.List)
	pagos.Get("/tipos", paymentHandler.ListTypes)
	pagos.Get("/descuentos", paymentHandler.ListDiscounts)
	pagos.Get("/usuario/:userId", paymentHandler.ListByUser)
	pagos.Post("/", paymentHandler.Create)
	pagos.Put("/:id", paymentHandler.Update)
	pagos.Delete("/:id", paymentHandler.Delete)

	// Estados de edición por módulo
	estados := api.Group("/estados", sessionMW)
	estados.Get("/:entity", stateHandler.Get)
	estados.Put("/:entity", stateHandler.Transition)

	// Catálogos
	catalogos := api.Group("/catalogos", sessionMW)
	catalogos.Get("/", catalogHandler.Available)
	catalogos.Get("/generos", catalogHandler.Genders)
	catalogos.Get("/puestos", catalogHandler.JobPositions)
	catalogos.Get("/tipos-persona", catalogHandler.PersonTypes)
	catalogos.Get("/:id", catalogHandler.List)

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
