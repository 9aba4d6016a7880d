// Package prompt builds the natural-language instructions sent to LLM providers.
package prompt

import (
	"fmt"

	"media-quiz/internal/domain"
)

// multipleChoiceTemplate asks for numQuizzes questions with numChoices answers each.
// The transcript follows on the next line, verbatim.
const multipleChoiceTemplate = "Give me %d multiple-choice questions each with %d possible answers." +
	" Clearly indicate the correct answer for each question." +
	" The questions should be based on the following reading passage:"

// Registry dispatches a quiz type to its prompt strategy.
type Registry struct{}

// NewRegistry creates a prompt Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Generate builds the prompt for quizType. Counts are embedded as given; content is
// not escaped or truncated.
func (r *Registry) Generate(quizType domain.QuizType, content string, numQuizzes, numChoices int) (string, error) {
	switch quizType {
	case domain.QuizTypeMultipleChoice:
		return MultipleChoice(content, numQuizzes, numChoices), nil
	default:
		return "", domain.NewUnsupportedQuizTypeError(quizType)
	}
}

// MultipleChoice builds a multiple-choice quiz prompt.
func MultipleChoice(content string, numQuizzes, numChoices int) string {
	return fmt.Sprintf(multipleChoiceTemplate, numQuizzes, numChoices) + "\n" + content
}

var _ domain.PromptGenerator = (*Registry)(nil)
