package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/festpix/festpix-backend/internal/config"
	"github.com/festpix/festpix-backend/internal/handler"
	"github.com/festpix/festpix-backend/internal/middleware"
	"github.com/festpix/festpix-backend/internal/repository"
	"github.com/festpix/festpix-backend/internal/service"
	"github.com/festpix/festpix-backend/pkg/database"
	"github.com/festpix/festpix-backend/pkg/email"
	"github.com/festpix/festpix-backend/pkg/logger"
	"github.com/festpix/festpix-backend/pkg/qrcode"
	"github.com/festpix/festpix-backend/pkg/storage"
	"github.com/festpix/festpix-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	themeRepo := repository.NewEventThemeRepository(db)
	eventRepo := repository.NewEventRepository(db)
	programRepo := repository.NewEventProgramRepository(db)
	contactRepo := repository.NewContactPersonRepository(db)
	uploadRepo := repository.NewGuestUploadRepository(db)

	// Object storage
	objectStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		zapLogger.Fatal("storage init failed", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(cfg, zapLogger)

	// QR code service
	qrService := qrcode.NewQRService(cfg.GuestBaseURL)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	themeService := service.NewThemeService(themeRepo, eventRepo)
	eventService := service.NewEventService(eventRepo, userRepo, qrService, zapLogger)
	programService := service.NewProgramService(programRepo, eventRepo)
	contactService := service.NewContactService(contactRepo, eventRepo)
	uploadService := service.NewUploadService(uploadRepo, eventRepo, userRepo, objectStorage, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	themeHandler := handler.NewThemeHandler(themeService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	programHandler := handler.NewProgramHandler(programService, validator)
	contactHandler := handler.NewContactHandler(contactService, validator)
	uploadHandler := handler.NewUploadHandler(uploadService, eventService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberLogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Guest routes: the QR token is the capability, no credential required
	public := api.Group("/public")
	public.Get("/events/:token", eventHandler.GetEventByToken)
	public.Get("/events/:token/rate-limit", uploadHandler.CheckRateLimit)
	public.Post("/events/:token/uploads", uploadHandler.CreateGuestUpload)

	api.Get("/themes/standard", themeHandler.GetStandardThemes)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)

		events := api.Group("/events")
		events.Post("/", eventHandler.CreateEvent)
		events.Get("/", eventHandler.GetMyEvents)
		events.Get("/:id", eventHandler.GetEvent)
		events.Put("/:id", eventHandler.UpdateEvent)
		events.Delete("/:id", eventHandler.DeleteEvent)
		events.Get("/:id/qrcode", eventHandler.GetEventQRCode)
		events.Get("/:eventId/programs", programHandler.GetProgramsByEvent)
		events.Put("/:eventId/programs/reorder", programHandler.ReorderPrograms)
		events.Get("/:eventId/contacts", contactHandler.GetContactsByEvent)
		events.Get("/:eventId/uploads", uploadHandler.GetUploadsByEvent)

		programs := api.Group("/programs")
		programs.Post("/", programHandler.CreateProgram)
		programs.Put("/:id", programHandler.UpdateProgram)
		programs.Delete("/:id", programHandler.DeleteProgram)

		contacts := api.Group("/contacts")
		contacts.Post("/", contactHandler.CreateContact)
		contacts.Put("/:id", contactHandler.UpdateContact)
		contacts.Delete("/:id", contactHandler.DeleteContact)

		themes := api.Group("/themes")
		themes.Get("/", themeHandler.GetAllThemes)
		themes.Post("/", themeHandler.CreateTheme)
		themes.Put("/:id", themeHandler.UpdateTheme)
		themes.Delete("/:id", themeHandler.DeleteTheme)

		uploads := api.Group("/uploads")
		uploads.Post("/", uploadHandler.CreateUpload)
		uploads.Put("/:id", uploadHandler.UpdateUpload)
		uploads.Delete("/:id", uploadHandler.DeleteUpload)
		uploads.Get("/:id/download", uploadHandler.DownloadUpload)

		// Administrator routes
		admin := api.Group("/admin", middleware.RequireAdmin())
		admin.Get("/users", userHandler.GetAllUsers)
		admin.Get("/users/:id", userHandler.GetUser)
		admin.Put("/users/:id", userHandler.UpdateUser)
		admin.Delete("/users/:id", userHandler.DeleteUser)
		admin.Post("/users/:id/deactivate", userHandler.DeactivateUser)
		admin.Get("/events", eventHandler.GetAllEvents)
		admin.Get("/uploads", uploadHandler.GetAllUploads)
	}

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
