package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumatch/resume-analyzer/internal/config"
	"resumatch/resume-analyzer/internal/handlers"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	analysisRepo := repositories.NewAnalysisRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	extractor := services.NewTextExtractor()

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	analyzerService := services.NewAnalyzerService(geminiService)
	log.Println("✅ Analyzer service initialized")

	// Initialize notifier
	mailer := services.NewSMTPMailer(cfg.SMTP)
	notifier := services.NewNotifier(mailer, cfg.Notifier.Concurrency)

	ctx := context.Background()
	notifier.Start(ctx)
	log.Println("✅ Notifier started successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		extractor,
		analysisRepo,
		notifier,
		cfg.Storage.MaxFileSize,
	)
	resumeHandler := handlers.NewResumeHandler(resumeRepo)
	historyHandler := handlers.NewHistoryHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/analyze/cover-letter", analyzeHandler.HandleCoverLetter)
	api.Post("/analyze/interview-questions", analyzeHandler.HandleInterviewQuestions)
	api.Post("/analyze/interview-feedback", analyzeHandler.HandleInterviewFeedback)
	api.Post("/analyze/optimize", analyzeHandler.HandleOptimize)
	api.Post("/resumes", resumeHandler.HandleSaveResume)
	api.Get("/resumes", resumeHandler.HandleGetResumes)
	api.Get("/history", historyHandler.HandleGetHistory)
	api.Get("/history/:id", historyHandler.HandleGetHistoryByID)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/analyze/cover-letter",
				"POST /api/v1/analyze/interview-questions",
				"POST /api/v1/analyze/interview-feedback",
				"POST /api/v1/analyze/optimize",
				"POST /api/v1/resumes",
				"GET /api/v1/resumes",
				"GET /api/v1/history",
				"GET /api/v1/history/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		notifier.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
