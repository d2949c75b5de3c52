package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/handiism/tube-clipper/internal/config"
	"github.com/handiism/tube-clipper/internal/http"
	ioutils "github.com/handiism/tube-clipper/internal/io"
	"github.com/handiism/tube-clipper/internal/model"
)

// Executor writes resolved audio streams to disk.
type Executor struct {
	httpClient       *http.Client
	imageService     *ioutils.ImageService
	saveThumbnail    bool
	thumbnailMaxSize int
	logger           *slog.Logger
}

// NewExecutor creates a new Executor.
//
// httpClient is only used for thumbnails and may be nil when
// settings.SaveThumbnail is false.
func NewExecutor(settings *config.Settings, httpClient *http.Client, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		httpClient:       httpClient,
		imageService:     ioutils.NewImageService(),
		saveThumbnail:    settings.SaveThumbnail && httpClient != nil,
		thumbnailMaxSize: settings.ThumbnailMaxSize,
		logger:           logger,
	}
}

// Execute downloads meta's audio stream to destination/filename.
//
// In test mode nothing is written, not even the destination directory, and
// nil is returned. Otherwise any failure is a *model.DownloadError; a
// partially written file is left in place.
//
// onProgress may be nil. It receives (bytesWritten, totalExpected).
func (e *Executor) Execute(ctx context.Context, meta *model.VideoMetadata, destination, filename string, testMode bool, onProgress func(written, total int64)) error {
	path := filepath.Join(destination, filename)
	if testMode {
		e.logger.Debug("test mode, skipping write", "path", path)
		return nil
	}

	if meta == nil || meta.Stream == nil {
		return &model.DownloadError{Path: path, Err: errors.New("no audio stream")}
	}

	if err := ioutils.EnsureDir(destination); err != nil {
		return &model.DownloadError{Path: path, Err: err}
	}

	written, err := e.writeStream(ctx, meta.Stream, path, onProgress)
	if err != nil {
		return &model.DownloadError{Path: path, Err: err}
	}
	e.logger.Info("audio saved", "path", path, "bytes", written)

	if e.saveThumbnail && meta.HasThumbnail() {
		if err := e.writeThumbnail(ctx, meta.ThumbnailURL, path); err != nil {
			e.logger.Warn("thumbnail not saved", "path", path, "error", err)
		}
	}

	return nil
}

func (e *Executor) writeStream(ctx context.Context, stream model.AudioStream, path string, onProgress func(written, total int64)) (int64, error) {
	body, size, err := stream.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("open stream: %w", err)
	}
	defer body.Close()

	file, err := ioutils.CreateFile(ctx, path)
	if err != nil {
		return 0, err
	}

	writer := &http.ProgressWriter{
		Writer:   file,
		Total:    size,
		OnUpdate: onProgress,
	}

	written, err := io.Copy(writer, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return written, err
	}
	if size > 0 && written < size {
		return written, fmt.Errorf("short transfer: %d of %d bytes: %w", written, size, io.ErrUnexpectedEOF)
	}

	return written, nil
}

func (e *Executor) writeThumbnail(ctx context.Context, thumbnailURL, audioPath string) error {
	data, err := e.httpClient.Get(ctx, thumbnailURL)
	if err != nil {
		return err
	}

	jpegData, err := e.imageService.Thumbnail(ctx, data, e.thumbnailMaxSize)
	if err != nil {
		return err
	}

	return ioutils.WriteFile(ctx, thumbnailPath(audioPath), jpegData)
}

// thumbnailPath returns the .jpg path sitting next to an audio file.
func thumbnailPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".jpg"
}
