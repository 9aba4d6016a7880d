package handler

import (
	"media-quiz/internal/domain"
	"media-quiz/internal/dto"
	"media-quiz/internal/logger"
	"media-quiz/internal/middleware"
	"media-quiz/internal/service"
	"media-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const successMessage = "success"

// QuizHandler handles transcription and quiz generation requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// Transcribe godoc
// @Summary Transcribe an uploaded audio file
// @Description Stages the uploaded audio and returns its transcript
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param audio_file formData file true "Audio file"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transcriptions [post]
func (h *QuizHandler) Transcribe(c *fiber.Ctx) error {
	header, err := c.FormFile("audio_file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("audio_file")}
	}

	upload, err := header.Open()
	if err != nil {
		return domain.NewStagingError(err)
	}
	defer upload.Close()

	logger.Get().Info("Transcribing upload",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size))

	transcript, err := h.service.TranscribeUpload(c.UserContext(), upload)
	if err != nil {
		return err
	}

	return c.JSON(dto.TranscriptionResponse{
		Message:     successMessage,
		Transcripts: transcript,
	})
}

// TranscribeFromURL godoc
// @Summary Transcribe a video from a URL
// @Description Downloads the video at video_url and returns its transcript
// @Tags transcription
// @Accept x-www-form-urlencoded
// @Produce json
// @Param video_url formData string true "Video URL"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /transcriptions/from-url [post]
func (h *QuizHandler) TranscribeFromURL(c *fiber.Ctx) error {
	var req dto.TranscribeURLRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}

	transcript, err := h.service.TranscribeURL(c.UserContext(), req.VideoURL)
	if err != nil {
		return err
	}

	return c.JSON(dto.TranscriptionResponse{
		Message:     successMessage,
		Transcripts: transcript,
	})
}

// GenerateQuizFromURL godoc
// @Summary Generate a quiz from a video URL
// @Description Downloads and transcribes the video, then asks the selected LLM for a quiz
// @Tags quiz
// @Accept x-www-form-urlencoded
// @Produce json
// @Param video_url formData string true "Video URL"
// @Param num_quizzes formData int false "Number of questions" default(1)
// @Param num_choices formData int false "Choices per question" default(4)
// @Param quiz_type formData string false "Quiz type" default(multiple_choice)
// @Param service formData string false "LLM provider" Enums(OpenAIGPT, GoogleBard)
// @Param service_key formData string false "LLM provider API key"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-quiz-from-url [post]
func (h *QuizHandler) GenerateQuizFromURL(c *fiber.Ctx) error {
	var req dto.GenerateQuizFromURLRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	opts, err := quizOptions(c)
	if err != nil {
		return err
	}

	result, err := h.service.GenerateFromURL(c.UserContext(), service.GenerateFromURLInput{
		VideoURL:    req.VideoURL,
		QuizOptions: opts,
	})
	if err != nil {
		return err
	}

	return c.JSON(quizResponse(result))
}

// GenerateQuizFromTranscript godoc
// @Summary Generate a quiz from a transcript
// @Description Asks the selected LLM for a quiz over the supplied text
// @Tags quiz
// @Accept x-www-form-urlencoded
// @Produce json
// @Param transcript formData string true "Transcript text"
// @Param num_quizzes formData int false "Number of questions" default(1)
// @Param num_choices formData int false "Choices per question" default(4)
// @Param quiz_type formData string false "Quiz type" default(multiple_choice)
// @Param service formData string false "LLM provider" Enums(OpenAIGPT, GoogleBard)
// @Param service_key formData string false "LLM provider API key"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-quiz-from-transcript [post]
func (h *QuizHandler) GenerateQuizFromTranscript(c *fiber.Ctx) error {
	var req dto.GenerateQuizFromTranscriptRequest
	if err := h.parse(c, &req); err != nil {
		return err
	}
	opts, err := quizOptions(c)
	if err != nil {
		return err
	}

	result, err := h.service.GenerateFromTranscript(c.UserContext(), service.GenerateFromTranscriptInput{
		Transcript:  req.Transcript,
		QuizOptions: opts,
	})
	if err != nil {
		return err
	}

	return c.JSON(quizResponse(result))
}

// parse binds the form body into req and validates it.
func (h *QuizHandler) parse(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewInvalidInputError("failed to parse form body: " + err.Error())
	}
	if errs := h.validator.Struct(req); len(errs) > 0 {
		return errs
	}
	return nil
}

func quizOptions(c *fiber.Ctx) (service.QuizOptions, error) {
	opts, ok := middleware.QuizOptions(c)
	if !ok {
		return service.QuizOptions{}, domain.NewInternalError("quiz options middleware is not installed", nil)
	}
	return opts, nil
}

func quizResponse(result *service.QuizResult) dto.QuizResponse {
	return dto.QuizResponse{
		Message:       successMessage,
		Transcripts:   result.Transcript,
		GeneratedQuiz: result.Quiz,
	}
}
