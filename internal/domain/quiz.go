package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Provider selects an LLM backend.
type Provider string

const (
	ProviderOpenAIGPT  Provider = "OpenAIGPT"
	ProviderGoogleBard Provider = "GoogleBard"
)

// Providers lists every supported provider.
func Providers() []Provider {
	return []Provider{ProviderOpenAIGPT, ProviderGoogleBard}
}

// QuizType selects a prompt strategy.
type QuizType string

const (
	QuizTypeMultipleChoice QuizType = "multiple_choice"
)

// ServiceInfo selects an LLM provider and carries the credential used to call it.
type ServiceInfo struct {
	Provider Provider
	Key      string
}

// String hides the credential so ServiceInfo is safe to log.
func (s ServiceInfo) String() string {
	return fmt.Sprintf("ServiceInfo{Provider: %s}", s.Provider)
}

// Option is a single answer choice.
type Option struct {
	OptionName string `json:"option_name"`
}

// Question is a question prompt with its ordered answer choices.
// CorrectAnswer is expected to match one option's text.
type Question struct {
	QuestionName  string   `json:"question_name"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuizResponse is the structured shape an LLM is asked to populate.
type QuizResponse struct {
	Questions []Question `json:"questions"`
}

// GeneratedQuiz is the result of an LLM call. Each provider returns the variant it
// can produce: StructuredQuiz for schema-constrained providers and TextQuiz for
// providers returning free text. Consumers switch on the concrete type.
type GeneratedQuiz interface {
	json.Marshaler
	generatedQuiz()
}

// StructuredQuiz holds a quiz parsed from a schema-constrained LLM response.
type StructuredQuiz struct {
	Quiz QuizResponse
}

func (StructuredQuiz) generatedQuiz() {}

// MarshalJSON renders the wrapped QuizResponse.
func (q StructuredQuiz) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Quiz)
}

// Validate reports every question whose correct answer does not literally match one
// of its options. A nil result means all questions are consistent.
func (q StructuredQuiz) Validate() []AnswerMismatch {
	var mismatches []AnswerMismatch
	for i, question := range q.Quiz.Questions {
		if !question.hasOption(question.CorrectAnswer) {
			mismatches = append(mismatches, AnswerMismatch{
				Index:         i,
				Question:      question.QuestionName,
				CorrectAnswer: question.CorrectAnswer,
			})
		}
	}
	return mismatches
}

func (q Question) hasOption(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, opt := range q.Options {
		if strings.TrimSpace(opt.OptionName) == answer {
			return true
		}
	}
	return false
}

// AnswerMismatch describes a question whose correct answer is not among its options.
type AnswerMismatch struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

// TextQuiz holds free-form quiz text. Its structure is not parsed.
type TextQuiz struct {
	Text string
}

func (TextQuiz) generatedQuiz() {}

// MarshalJSON renders the text as a JSON string.
func (q TextQuiz) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Text)
}
