// Package transcriber adapts speech-to-text backends to domain.Transcriber.
package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"media-quiz/internal/domain"
	"media-quiz/internal/logger"

	"go.uber.org/zap"
)

// DefaultModel is the transcription model requested when none is configured.
const DefaultModel = "whisper-1"

const maxErrorBody = 512

// WhisperTranscriber uploads media to an OpenAI-compatible
// /audio/transcriptions endpoint.
type WhisperTranscriber struct {
	baseURL    string
	apiKey     string
	model      string
	language   string
	httpClient *http.Client
}

// NewWhisperTranscriber creates a WhisperTranscriber. baseURL is the API root,
// e.g. "https://api.openai.com/v1".
func NewWhisperTranscriber(baseURL, apiKey, model, language string, timeout time.Duration) (*WhisperTranscriber, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("transcription base URL cannot be empty")
	}
	if model == "" {
		model = DefaultModel
	}
	return &WhisperTranscriber{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the file at path and returns the transcript text.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open media file: %w", err)
	}
	defer f.Close()

	body, contentType := t.multipartBody(f, filepath.Base(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	l := logger.Get()
	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("transcription backend returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	l.Info("Transcription completed",
		zap.String("model", t.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("length", len(out.Text)),
	)
	return out.Text, nil
}

// multipartBody streams the form through a pipe so large media is never held in memory.
func (t *WhisperTranscriber) multipartBody(media io.Reader, filename string) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeForm(mw, media, filename, t.model, t.language)
		if closeErr := mw.Close(); err == nil {
			err = closeErr
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}

func writeForm(mw *multipart.Writer, media io.Reader, filename, model, language string) error {
	if err := mw.WriteField("model", model); err != nil {
		return err
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return err
		}
	}
	if err := mw.WriteField("response_format", "json"); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, media); err != nil {
		return errors.Join(errors.New("failed to stream media file"), err)
	}
	return nil
}

var _ domain.Transcriber = (*WhisperTranscriber)(nil)
