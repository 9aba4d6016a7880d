package middleware

import (
	"strconv"

	"media-quiz/internal/config"
	"media-quiz/internal/domain"
	"media-quiz/internal/dto"
	"media-quiz/internal/service"
	"media-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizOptionsKey is the fiber.Ctx Locals key holding the validated service.QuizOptions.
const QuizOptionsKey = "validated_quiz_options"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
	defaults  config.QuizConfig
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator, defaults config.QuizConfig) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validator,
		defaults:  defaults,
	}
}

// ValidateQuizOptions parses num_quizzes, num_choices, quiz_type, service and
// service_key from the form body. Absent fields take the configured defaults.
// Integers are not range checked.
func (vm *ValidationMiddleware) ValidateQuizOptions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.QuizOptionsRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("failed to parse form body: " + err.Error())
		}
		if errs := vm.validator.Struct(req); len(errs) > 0 {
			return errs
		}

		opts := service.QuizOptions{
			QuizType:   domain.QuizType(vm.defaults.DefaultType),
			NumQuizzes: vm.defaults.DefaultNumQuizzes,
			NumChoices: vm.defaults.DefaultNumChoices,
			Service: domain.ServiceInfo{
				Provider: domain.Provider(req.Service),
				Key:      req.ServiceKey,
			},
		}
		if req.QuizType != "" {
			opts.QuizType = domain.QuizType(req.QuizType)
		}
		if req.NumQuizzes != "" {
			opts.NumQuizzes, _ = strconv.Atoi(req.NumQuizzes)
		}
		if req.NumChoices != "" {
			opts.NumChoices, _ = strconv.Atoi(req.NumChoices)
		}

		c.Locals(QuizOptionsKey, opts)
		return c.Next()
	}
}

// QuizOptions returns the options stored by ValidateQuizOptions.
func QuizOptions(c *fiber.Ctx) (service.QuizOptions, bool) {
	opts, ok := c.Locals(QuizOptionsKey).(service.QuizOptions)
	return opts, ok
}
