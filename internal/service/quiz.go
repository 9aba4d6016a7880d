package service

import (
	"context"
	"io"
	"strings"

	"media-quiz/internal/config"
	"media-quiz/internal/domain"
	"media-quiz/internal/logger"
	"media-quiz/internal/staging"

	"go.uber.org/zap"
)

// MediaStager persists request media to local files for the transcriber.
type MediaStager interface {
	StageReader(ctx context.Context, r io.Reader, kind staging.Kind) (*staging.File, error)
	StageURL(ctx context.Context, rawURL string, kind staging.Kind) (*staging.File, error)
}

// QuizOptions controls prompt construction and provider selection.
// An empty Service.Provider selects the configured default provider and an empty
// Service.Key selects the configured key of the chosen provider.
type QuizOptions struct {
	QuizType   domain.QuizType
	NumQuizzes int
	NumChoices int
	Service    domain.ServiceInfo
}

type GenerateFromURLInput struct {
	VideoURL string
	QuizOptions
}

type GenerateFromTranscriptInput struct {
	Transcript string
	QuizOptions
}

// QuizResult is a generated quiz together with the transcript it was built from.
type QuizResult struct {
	Transcript string
	Quiz       domain.GeneratedQuiz
}

// QuizService defines the media to quiz pipelines.
type QuizService interface {
	TranscribeUpload(ctx context.Context, audio io.Reader) (string, error)
	TranscribeURL(ctx context.Context, videoURL string) (string, error)
	GenerateFromURL(ctx context.Context, in GenerateFromURLInput) (*QuizResult, error)
	GenerateFromTranscript(ctx context.Context, in GenerateFromTranscriptInput) (*QuizResult, error)
}

type quizService struct {
	stager      MediaStager
	transcriber domain.Transcriber
	prompts     domain.PromptGenerator
	llm         domain.LLMDispatcher
	cfg         *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	stager MediaStager,
	transcriber domain.Transcriber,
	prompts domain.PromptGenerator,
	llm domain.LLMDispatcher,
	cfg *config.Config,
) QuizService {
	return &quizService{
		stager:      stager,
		transcriber: transcriber,
		prompts:     prompts,
		llm:         llm,
		cfg:         cfg,
	}
}

// TranscribeUpload stages an uploaded audio stream and transcribes it.
func (s *quizService) TranscribeUpload(ctx context.Context, audio io.Reader) (string, error) {
	file, err := s.stager.StageReader(ctx, audio, staging.KindAudio)
	if err != nil {
		return "", domain.NewStagingError(err)
	}
	defer removeStaged(file)

	return s.transcribe(ctx, file)
}

// TranscribeURL downloads a video and transcribes it.
func (s *quizService) TranscribeURL(ctx context.Context, videoURL string) (string, error) {
	file, err := s.stageURL(ctx, videoURL)
	if err != nil {
		return "", err
	}
	defer removeStaged(file)

	return s.transcribe(ctx, file)
}

// GenerateFromURL downloads a video, transcribes it and asks an LLM for a quiz.
func (s *quizService) GenerateFromURL(ctx context.Context, in GenerateFromURLInput) (*QuizResult, error) {
	transcript, err := s.TranscribeURL(ctx, in.VideoURL)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, transcript, in.QuizOptions)
}

// GenerateFromTranscript asks an LLM for a quiz over caller-supplied text.
func (s *quizService) GenerateFromTranscript(ctx context.Context, in GenerateFromTranscriptInput) (*QuizResult, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, domain.NewInvalidInputError("transcript is required")
	}
	return s.generate(ctx, in.Transcript, in.QuizOptions)
}

func (s *quizService) stageURL(ctx context.Context, videoURL string) (*staging.File, error) {
	if strings.TrimSpace(videoURL) == "" {
		return nil, domain.NewInvalidInputError("video_url is required")
	}
	file, err := s.stager.StageURL(ctx, videoURL, staging.KindVideo)
	if err != nil {
		return nil, domain.NewDownloadError(err)
	}
	return file, nil
}

func (s *quizService) transcribe(ctx context.Context, file *staging.File) (string, error) {
	transcript, err := s.transcriber.Transcribe(ctx, file.Path())
	if err != nil {
		return "", domain.NewTranscriptionError(err)
	}
	logger.Get().Info("Media transcribed",
		zap.String("path", file.Path()),
		zap.Int("transcriptLength", len(transcript)))
	return transcript, nil
}

func (s *quizService) generate(ctx context.Context, transcript string, opts QuizOptions) (*QuizResult, error) {
	l := logger.Get()

	prompt, err := s.prompts.Generate(opts.QuizType, transcript, opts.NumQuizzes, opts.NumChoices)
	if err != nil {
		return nil, domain.NewPromptGenerationError(err)
	}

	info := s.resolveService(opts.Service)
	l.Info("Calling LLM",
		zap.Stringer("service", info),
		zap.String("quizType", string(opts.QuizType)),
		zap.Int("numQuizzes", opts.NumQuizzes),
		zap.Int("numChoices", opts.NumChoices))

	quiz, err := s.llm.Call(ctx, info, prompt)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	if structured, ok := quiz.(domain.StructuredQuiz); ok {
		if mismatches := structured.Validate(); len(mismatches) > 0 {
			l.Warn("Generated quiz has answers outside its options",
				zap.Stringer("service", info),
				zap.Any("mismatches", mismatches))
			if s.cfg.Quiz.StrictAnswers {
				return nil, domain.NewLLMServiceError(domain.NewAnswerNotAmongOptionsError(mismatches))
			}
		}
	}

	return &QuizResult{Transcript: transcript, Quiz: quiz}, nil
}

func (s *quizService) resolveService(info domain.ServiceInfo) domain.ServiceInfo {
	if info.Provider == "" {
		info.Provider = domain.Provider(s.cfg.LLM.DefaultProvider)
	}
	if info.Key == "" {
		info.Key = s.cfg.ProviderKey(string(info.Provider))
	}
	return info
}

func removeStaged(file *staging.File) {
	if err := file.Remove(); err != nil {
		logger.Get().Warn("Failed to remove staged file", zap.String("path", file.Path()), zap.Error(err))
	}
}
