// @title Media Quiz API
// @version 1.0
// @description Transcribes audio and video and generates quizzes from transcripts with an LLM.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "media-quiz/cmd/api/docs"
	"media-quiz/internal/adapter"
	"media-quiz/internal/adapter/llm"
	"media-quiz/internal/adapter/transcriber"
	"media-quiz/internal/cache"
	"media-quiz/internal/config"
	"media-quiz/internal/domain"
	"media-quiz/internal/handler"
	"media-quiz/internal/logger"
	"media-quiz/internal/middleware"
	"media-quiz/internal/prompt"
	"media-quiz/internal/service"
	"media-quiz/internal/staging"
	"media-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		// The error handler has not run yet, so derive the status from err.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
			zap.Any("request_id", c.Locals("requestid")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	stager, err := staging.New(cfg.Staging.Dir,
		staging.WithChunkSize(cfg.Staging.ChunkSize),
		staging.WithHTTPClient(&http.Client{Timeout: cfg.Staging.DownloadTimeout}),
	)
	if err != nil {
		appLogger.Fatal("Failed to prepare staging directory", zap.Error(err))
	}
	appLogger.Info("Staging directory ready", zap.String("dir", stager.Dir()))

	whisper, err := transcriber.NewWhisperTranscriber(
		cfg.Transcription.BaseURL,
		cfg.Transcription.APIKey,
		cfg.Transcription.Model,
		cfg.Transcription.Language,
		cfg.Transcription.Timeout,
	)
	if err != nil {
		appLogger.Fatal("Failed to create transcriber", zap.Error(err))
	}

	// The transcript cache is optional; without Redis every request is transcribed.
	var transcriptCache domain.Cache
	if cfg.Redis.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		transcriptCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Transcript cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.TranscriptTTL))
	}
	transcriptionService := service.NewTranscriptionService(whisper, transcriptCache, cfg.Transcription.Model, cfg.Redis.TranscriptTTL)

	llmRegistry := llm.NewRegistry(
		llm.NewOpenAIGateway(cfg.LLM.OpenAI.Model, cfg.LLM.OpenAI.BaseURL, &http.Client{Timeout: cfg.LLM.OpenAI.Timeout}),
		llm.NewGeminiGateway(cfg.LLM.Gemini.Model, cfg.LLM.Gemini.BaseURL, &http.Client{Timeout: cfg.LLM.Gemini.Timeout}),
	)
	appLogger.Info("LLM gateways initialized",
		zap.String("default_provider", cfg.LLM.DefaultProvider),
		zap.String("openai_model", cfg.LLM.OpenAI.Model),
		zap.String("gemini_model", cfg.LLM.Gemini.Model),
	)

	quizService := service.NewQuizService(stager, transcriptionService, prompt.NewRegistry(), llmRegistry, cfg)

	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, validator)
	healthHandler := handler.NewHealthHandler(transcriptCache)
	validationMiddleware := middleware.NewValidationMiddleware(validator, cfg.Quiz)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins, AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, quizHandler, healthHandler, validationMiddleware)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
