package service

import (
	"context"
	"time"

	"media-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTranscriber ---
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// --- MockPromptGenerator ---
type MockPromptGenerator struct {
	mock.Mock
}

func (m *MockPromptGenerator) Generate(quizType domain.QuizType, content string, numQuizzes, numChoices int) (string, error) {
	args := m.Called(quizType, content, numQuizzes, numChoices)
	return args.String(0), args.Error(1)
}

// --- MockLLMDispatcher ---
type MockLLMDispatcher struct {
	mock.Mock
}

func (m *MockLLMDispatcher) Call(ctx context.Context, info domain.ServiceInfo, prompt string) (domain.GeneratedQuiz, error) {
	args := m.Called(ctx, info, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.GeneratedQuiz), args.Error(1)
}
