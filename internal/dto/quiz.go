package dto

import "media-quiz/internal/domain"

// TranscribeURLRequest is the form body of POST /transcriptions/from-url.
type TranscribeURLRequest struct {
	VideoURL string `form:"video_url" validate:"required,url"`
}

// GenerateQuizFromURLRequest is the form body of POST /generate-quiz-from-url.
// Quiz options are read by the quiz options middleware.
type GenerateQuizFromURLRequest struct {
	VideoURL string `form:"video_url" validate:"required,url"`
}

// GenerateQuizFromTranscriptRequest is the form body of POST /generate-quiz-from-transcript.
type GenerateQuizFromTranscriptRequest struct {
	Transcript string `form:"transcript" validate:"required"`
}

// QuizOptionsRequest holds the optional quiz fields shared by both generation endpoints.
// Numbers stay strings so a non-integer can be reported as a field error.
type QuizOptionsRequest struct {
	NumQuizzes string `form:"num_quizzes" validate:"omitempty,integer"`
	NumChoices string `form:"num_choices" validate:"omitempty,integer"`
	QuizType   string `form:"quiz_type"`
	Service    string `form:"service"`
	ServiceKey string `form:"service_key"`
}

// TranscriptionResponse is returned by the transcription endpoints.
// @Description Transcript of the submitted media
type TranscriptionResponse struct {
	Message     string `json:"message" example:"success"`
	Transcripts string `json:"transcripts"`
}

// QuizResponse is returned by the quiz generation endpoints. GeneratedQuiz is a
// {"questions": [...]} object for OpenAIGPT and a plain string for GoogleBard.
// @Description Generated quiz with the transcript it was built from
type QuizResponse struct {
	Message       string               `json:"message" example:"success"`
	Transcripts   string               `json:"transcripts"`
	GeneratedQuiz domain.GeneratedQuiz `json:"generated_quiz" swaggertype:"object"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Message string `json:"message" example:"ok"`
	Cache   string `json:"cache,omitempty" example:"ok"`
}
