package domain

import "context"

// Transcriber converts a local media file into transcript text.
// Implementations are opaque to the pipeline: any failure is reported as a
// transcription error.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// LLMGateway calls a single LLM provider with a credential and a prompt.
type LLMGateway interface {
	Call(ctx context.Context, credential string, prompt string) (GeneratedQuiz, error)
}

// LLMDispatcher routes a prompt to the gateway selected by ServiceInfo.
type LLMDispatcher interface {
	Call(ctx context.Context, info ServiceInfo, prompt string) (GeneratedQuiz, error)
}

// PromptGenerator builds the instruction sent to an LLM for a quiz type.
type PromptGenerator interface {
	Generate(quizType QuizType, content string, numQuizzes, numChoices int) (string, error)
}
