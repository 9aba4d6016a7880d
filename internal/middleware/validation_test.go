package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"media-quiz/internal/config"
	"media-quiz/internal/domain"
	"media-quiz/internal/service"
	"media-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQuizOptions(t *testing.T, form url.Values) (int, service.QuizOptions) {
	t.Helper()
	vm := NewValidationMiddleware(validation.NewValidator(), config.QuizConfig{
		DefaultType:       "multiple_choice",
		DefaultNumQuizzes: 1,
		DefaultNumChoices: 4,
	})

	var got service.QuizOptions
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/", vm.ValidateQuizOptions(), func(c *fiber.Ctx) error {
		opts, ok := QuizOptions(c)
		require.True(t, ok)
		got = opts
		return c.SendStatus(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode, got
}

func TestValidateQuizOptions_Defaults(t *testing.T) {
	status, opts := runQuizOptions(t, url.Values{})

	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, service.QuizOptions{QuizType: domain.QuizTypeMultipleChoice, NumQuizzes: 1, NumChoices: 4}, opts)
}

func TestValidateQuizOptions_PassesIntegersThroughUnchecked(t *testing.T) {
	status, opts := runQuizOptions(t, url.Values{
		"num_quizzes": {"-2"},
		"num_choices": {"0"},
		"quiz_type":   {"essay"},
		"service":     {"GoogleBard"},
		"service_key": {"k"},
	})

	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, -2, opts.NumQuizzes)
	assert.Equal(t, 0, opts.NumChoices)
	assert.Equal(t, domain.QuizType("essay"), opts.QuizType)
	assert.Equal(t, domain.ServiceInfo{Provider: domain.ProviderGoogleBard, Key: "k"}, opts.Service)
}

func TestValidateQuizOptions_RejectsNonInteger(t *testing.T) {
	status, _ := runQuizOptions(t, url.Values{"num_choices": {"four"}})
	assert.Equal(t, http.StatusBadRequest, status)
}
