package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Pipeline stage errors
	CodeStaging               ErrorCode = "STAGING_ERROR"
	CodeDownload              ErrorCode = "DOWNLOAD_ERROR"
	CodeTranscription         ErrorCode = "TRANSCRIPTION_ERROR"
	CodePromptGeneration      ErrorCode = "PROMPT_GENERATION_ERROR"
	CodeLLMServiceError       ErrorCode = "LLM_SERVICE_ERROR"
	CodeUnsupportedQuizType   ErrorCode = "UNSUPPORTED_QUIZ_TYPE"
	CodeUnsupportedProvider   ErrorCode = "UNSUPPORTED_PROVIDER"
	CodeAnswerNotAmongOptions ErrorCode = "ANSWER_NOT_AMONG_OPTIONS"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil && !strings.HasSuffix(e.Message, e.Err.Error()) {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HasCode reports whether err wraps a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == code {
			return true
		}
		return HasCode(domainErr.Err, code)
	}
	return false
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// Stage errors carry the user-facing message of the pipeline stage that failed.
// The cause is appended to the message so callers see what went wrong.

func NewStagingError(err error) *DomainError {
	return NewError(CodeStaging, withCause("Failed to save uploaded file", err), err)
}

func NewDownloadError(err error) *DomainError {
	return NewError(CodeDownload, withCause("Failed to download file from URL", err), err)
}

func NewTranscriptionError(err error) *DomainError {
	return NewError(CodeTranscription, withCause("Transcription error", err), err)
}

func NewPromptGenerationError(err error) *DomainError {
	return NewError(CodePromptGeneration, withCause("Prompt generation error", err), err)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, withCause("LLM service call error", err), err)
}

func NewUnsupportedQuizTypeError(quizType QuizType) *DomainError {
	return NewError(CodeUnsupportedQuizType, fmt.Sprintf("unsupported quiz type: %q", string(quizType)), nil)
}

func NewUnsupportedProviderError(provider Provider) *DomainError {
	return NewError(CodeUnsupportedProvider, fmt.Sprintf("unsupported LLM provider: %q", string(provider)), nil)
}

// NewAnswerNotAmongOptionsError reports questions whose correct answer matches none of their options.
func NewAnswerNotAmongOptionsError(mismatches []AnswerMismatch) *DomainError {
	indexes := make([]string, len(mismatches))
	for i, m := range mismatches {
		indexes[i] = fmt.Sprint(m.Index + 1)
	}
	return NewError(CodeAnswerNotAmongOptions,
		fmt.Sprintf("correct answer is not among the options for question(s) %s", strings.Join(indexes, ", ")), nil)
}

func withCause(message string, err error) string {
	if err == nil {
		return message
	}
	return message + ": " + err.Error()
}
