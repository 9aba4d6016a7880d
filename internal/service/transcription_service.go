package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"media-quiz/internal/cache"
	"media-quiz/internal/domain"
	"media-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TranscriptionService wraps a domain.Transcriber with an optional transcript cache.
// Media is keyed by the SHA-256 of its bytes, so the same recording staged under
// different names shares one entry. Concurrent requests for identical media are
// collapsed into a single backend call.
type TranscriptionService struct {
	transcriber domain.Transcriber
	cache       domain.Cache
	model       string
	ttl         time.Duration
	sfGroup     singleflight.Group
}

// NewTranscriptionService creates a TranscriptionService. A nil cache disables caching.
func NewTranscriptionService(transcriber domain.Transcriber, cache domain.Cache, model string, ttl time.Duration) *TranscriptionService {
	return &TranscriptionService{
		transcriber: transcriber,
		cache:       cache,
		model:       model,
		ttl:         ttl,
	}
}

// Transcribe returns the transcript of the media at path.
func (s *TranscriptionService) Transcribe(ctx context.Context, path string) (string, error) {
	if s.cache == nil {
		return s.transcriber.Transcribe(ctx, path)
	}

	l := logger.Get()

	digest, err := fileDigest(path)
	if err != nil {
		l.Warn("Failed to hash media file, skipping transcript cache", zap.String("path", path), zap.Error(err))
		return s.transcriber.Transcribe(ctx, path)
	}
	cacheKey := cache.TranscriptKey(digest, s.model)

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		l.Debug("Transcript cache hit", zap.String("cacheKey", cacheKey))
		return cached, nil
	case errors.Is(err, domain.ErrCacheMiss):
		l.Debug("Transcript cache miss", zap.String("cacheKey", cacheKey))
	default:
		l.Warn("Transcript cache read failed", zap.String("cacheKey", cacheKey), zap.Error(err))
	}

	res, err, shared := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		text, err := s.transcriber.Transcribe(ctx, path)
		if err != nil {
			return nil, err
		}
		if setErr := s.cache.Set(ctx, cacheKey, text, s.ttl); setErr != nil {
			l.Warn("Failed to cache transcript", zap.String("cacheKey", cacheKey), zap.Error(setErr))
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		l.Debug("Transcript shared with concurrent request", zap.String("cacheKey", cacheKey))
	}

	text, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("unexpected type from singleflight.Do for transcript: %T", res)
	}
	return text, nil
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

var _ domain.Transcriber = (*TranscriptionService)(nil)
