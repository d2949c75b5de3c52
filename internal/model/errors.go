package model

import (
	"errors"
	"fmt"
)

// ErrNoAudioStream is returned when a video resolves but offers no audio-only format.
var ErrNoAudioStream = errors.New("no audio-only stream available")

// ResolutionError is returned when a classified URL does not lead to a
// retrievable video: malformed ID, private or removed content, or an
// upstream parsing failure.
type ResolutionError struct {
	URL string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.URL, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// DownloadError is returned when writing an audio track fails: disk full,
// permission denied, or a transfer interrupted midway.
type DownloadError struct {
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
