package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"media-quiz/internal/adapter/llm"
	"media-quiz/internal/adapter/transcriber"
	"media-quiz/internal/config"
	"media-quiz/internal/handler"
	"media-quiz/internal/middleware"
	"media-quiz/internal/prompt"
	"media-quiz/internal/service"
	"media-quiz/internal/staging"
	"media-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineEnv runs the real pipeline against fake media, transcription and OpenAI servers.
type pipelineEnv struct {
	app          *fiber.App
	stagingDir   string
	mediaURL     string
	llmCalls     int32
	transcripts  int32
	lastPrompt   atomic.Value
	mediaStatus  int
	whisperFails bool
}

func newPipelineEnv(t *testing.T) *pipelineEnv {
	t.Helper()
	env := &pipelineEnv{mediaStatus: http.StatusOK}

	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(env.mediaStatus)
		_, _ = w.Write([]byte("fake mp4 bytes"))
	}))
	t.Cleanup(media.Close)
	env.mediaURL = media.URL + "/lecture.mp4"

	whisper := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&env.transcripts, 1)
		if env.whisperFails {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"text":"Paris is the capital of France."}`))
	}))
	t.Cleanup(whisper.Close)

	openAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&env.llmCalls, 1)
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) > 0 {
			env.lastPrompt.Store(body.Messages[0].Content)
		}

		quiz := `{"questions":[{"question_name":"What is the capital of France?","options":[{"option_name":"Paris"},{"option_name":"Rome"}],"correct_answer":"Paris"}]}`
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   llm.DefaultOpenAIModel,
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]interface{}{"role": "assistant", "content": quiz},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(openAI.Close)

	cfg := &config.Config{
		LLM: config.LLMConfig{
			DefaultProvider: "OpenAIGPT",
			OpenAI:          config.OpenAIConfig{APIKey: "sk-test"},
		},
		Quiz: config.QuizConfig{DefaultType: "multiple_choice", DefaultNumQuizzes: 1, DefaultNumChoices: 4},
	}

	env.stagingDir = t.TempDir()
	stager, err := staging.New(env.stagingDir)
	require.NoError(t, err)
	tr, err := transcriber.NewWhisperTranscriber(whisper.URL, "sk-test", "", "", 5*time.Second)
	require.NoError(t, err)
	registry := llm.NewRegistry(llm.NewOpenAIGateway("", openAI.URL, openAI.Client()), nil)

	quizService := service.NewQuizService(stager, service.NewTranscriptionService(tr, nil, "whisper-1", 0), prompt.NewRegistry(), registry, cfg)
	v := validation.NewValidator()

	env.app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(env.app, handler.NewQuizHandler(quizService, v), handler.NewHealthHandler(nil), middleware.NewValidationMiddleware(v, cfg.Quiz))
	return env
}

func (e *pipelineEnv) assertStagingEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(e.stagingDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipeline_GenerateQuizFromURL(t *testing.T) {
	env := newPipelineEnv(t)

	status, body := postForm(t, env.app, "/generate-quiz-from-url", url.Values{
		"video_url":   {env.mediaURL},
		"num_quizzes": {"2"},
		"num_choices": {"3"},
	})

	require.Equal(t, http.StatusOK, status, "body: %v", body)
	assert.Equal(t, "success", body["message"])
	assert.Equal(t, "Paris is the capital of France.", body["transcripts"])
	quiz := body["generated_quiz"].(map[string]interface{})
	questions := quiz["questions"].([]interface{})
	require.Len(t, questions, 1)
	assert.Equal(t, "Paris", questions[0].(map[string]interface{})["correct_answer"])

	sent, _ := env.lastPrompt.Load().(string)
	assert.True(t, strings.HasPrefix(sent, "Give me 2 multiple-choice questions each with 3 possible answers."))
	assert.True(t, strings.HasSuffix(sent, "\nParis is the capital of France."))
	env.assertStagingEmpty(t)
}

func TestPipeline_DownloadFailureSkipsTranscription(t *testing.T) {
	env := newPipelineEnv(t)
	env.mediaStatus = http.StatusNotFound

	status, body := postForm(t, env.app, "/generate-quiz-from-url", url.Values{"video_url": {env.mediaURL}})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.True(t, strings.HasPrefix(body["message"].(string), "Failed to download file from URL"))
	assert.Zero(t, atomic.LoadInt32(&env.transcripts))
	assert.Zero(t, atomic.LoadInt32(&env.llmCalls))
	env.assertStagingEmpty(t)
}

func TestPipeline_TranscriptionFailureRemovesStagedFile(t *testing.T) {
	env := newPipelineEnv(t)
	env.whisperFails = true

	status, body := postForm(t, env.app, "/transcriptions/from-url", url.Values{"video_url": {env.mediaURL}})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.True(t, strings.HasPrefix(body["message"].(string), "Transcription error"))
	assert.Contains(t, body["message"], "model overloaded")
	env.assertStagingEmpty(t)
}

func TestPipeline_UnconfiguredProvider(t *testing.T) {
	env := newPipelineEnv(t)

	status, body := postForm(t, env.app, "/generate-quiz-from-transcript", url.Values{
		"transcript": {"Paris is the capital of France."},
		"service":    {"GoogleBard"},
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.True(t, strings.HasPrefix(body["message"].(string), "LLM service call error"))
	assert.Zero(t, atomic.LoadInt32(&env.llmCalls))
}

func TestPipeline_RepeatedTranscriptCallsLLMEachTime(t *testing.T) {
	env := newPipelineEnv(t)
	form := url.Values{"transcript": {"Paris is the capital of France."}}

	for i := 0; i < 2; i++ {
		status, _ := postForm(t, env.app, "/generate-quiz-from-transcript", form)
		require.Equal(t, http.StatusOK, status)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&env.llmCalls))
}
