// Package staging writes inbound media to uniquely named local files that are
// owned by a single request and removed when the request finishes.
package staging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"media-quiz/internal/logger"
	"media-quiz/internal/util"

	"go.uber.org/zap"
)

// Kind selects the extension of a staged file.
type Kind int

const (
	KindAudio Kind = iota
	KindVideo
)

// Extension returns the fixed file extension for the media kind.
func (k Kind) Extension() string {
	switch k {
	case KindVideo:
		return ".mp4"
	default:
		return ".mp3"
	}
}

// DefaultChunkSize is the read size used when streaming a download to disk.
const DefaultChunkSize = 8192

// ErrDownload is wrapped by every StageURL failure caused by the remote source.
var ErrDownload = errors.New("download failed")

// Stager creates staged files inside a single directory.
type Stager struct {
	dir       string
	chunkSize int
	client    *http.Client
	newName   func() string
}

// Option configures a Stager.
type Option func(*Stager)

// WithHTTPClient sets the client used for URL downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Stager) {
		s.client = client
	}
}

// WithChunkSize sets the read size used when streaming downloads.
func WithChunkSize(size int) Option {
	return func(s *Stager) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithNameFunc replaces the ULID name generator.
func WithNameFunc(fn func() string) Option {
	return func(s *Stager) {
		s.newName = fn
	}
}

// New creates a Stager writing into dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Stager, error) {
	if dir == "" {
		return nil, fmt.Errorf("staging directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create staging directory %s: %w", dir, err)
	}
	s := &Stager{
		dir:       dir,
		chunkSize: DefaultChunkSize,
		client:    http.DefaultClient,
		newName:   util.NewULID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the staging directory.
func (s *Stager) Dir() string {
	return s.dir
}

// File is a staged media file. The creator owns it and must call Remove.
type File struct {
	path string

	once sync.Once
	err  error
}

// Path returns the location of the staged bytes.
func (f *File) Path() string {
	return f.path
}

// Remove deletes the staged file. It is safe to call more than once and a file
// that is already gone is not an error.
func (f *File) Remove() error {
	f.once.Do(func() {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			f.err = err
		}
	})
	return f.err
}

// create opens a new file exclusively so a name clash can never overwrite the
// file of another request.
func (s *Stager) create(kind Kind) (*os.File, *File, error) {
	path := filepath.Join(s.dir, s.newName()+kind.Extension())
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	return fh, &File{path: path}, nil
}

// StageReader copies r into a new staged file.
func (s *Stager) StageReader(ctx context.Context, r io.Reader, kind Kind) (*File, error) {
	fh, file, err := s.create(kind)
	if err != nil {
		return nil, err
	}

	_, copyErr := io.Copy(fh, r)
	closeErr := fh.Close()
	if err := errors.Join(copyErr, closeErr, ctx.Err()); err != nil {
		s.discard(file)
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	logger.Get().Debug("Staged upload", zap.String("path", file.Path()))
	return file, nil
}

// StageURL downloads rawURL into a new staged file. Transport failures and
// non-2xx responses wrap ErrDownload. A partially written file is removed
// before returning an error.
func (s *Stager) StageURL(ctx context.Context, rawURL string, kind Kind) (*File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrDownload, rawURL, resp.Status)
	}

	fh, file, err := s.create(kind)
	if err != nil {
		return nil, err
	}

	written, copyErr := s.copyChunks(fh, resp.Body)
	closeErr := fh.Close()
	if copyErr != nil {
		s.discard(file)
		return nil, fmt.Errorf("%w: %v", ErrDownload, copyErr)
	}
	if closeErr != nil {
		s.discard(file)
		return nil, fmt.Errorf("failed to write staged file: %w", closeErr)
	}

	logger.Get().Debug("Staged download",
		zap.String("url", rawURL),
		zap.String("path", file.Path()),
		zap.Int64("bytes", written),
	)
	return file, nil
}

// copyChunks streams src to dst in fixed-size reads.
func (s *Stager) copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, s.chunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			w, err := dst.Write(buf[:n])
			written += int64(w)
			if err != nil {
				return written, err
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func (s *Stager) discard(file *File) {
	if err := file.Remove(); err != nil {
		logger.Get().Warn("Failed to remove partial staged file", zap.String("path", file.Path()), zap.Error(err))
	}
}
