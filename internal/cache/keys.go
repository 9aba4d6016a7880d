package cache

import "strings"

const (
	GlobalKeyPrefix = "mediaquiz"
)

// GenerateCacheKey builds "mediaquiz:<service>:<object>:<id>". Any params are
// joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TranscriptKey is the cache key of a transcript for media with the given
// content digest, produced by model.
func TranscriptKey(digest, model string) string {
	return GenerateCacheKey("transcription", "transcript", digest, model)
}
