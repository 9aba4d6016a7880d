package handler

import (
	"media-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the transcription, quiz and health endpoints on router.
func RegisterRoutes(router fiber.Router, quiz *QuizHandler, health *HealthHandler, vm *middleware.ValidationMiddleware) {
	router.Get("/health", health.Health)

	router.Post("/transcriptions", quiz.Transcribe)
	router.Post("/transcriptions/from-url", quiz.TranscribeFromURL)

	router.Post("/generate-quiz-from-url", vm.ValidateQuizOptions(), quiz.GenerateQuizFromURL)
	router.Post("/generate-quiz-from-transcript", vm.ValidateQuizOptions(), quiz.GenerateQuizFromTranscript)
}
