package model

import (
	"context"
	"io"
)

// VideoReference is a clipboard snapshot accepted as a candidate video URL.
//
// URL is never empty and always begins with the canonical video host prefix.
// Deeper validation happens when the metadata is resolved.
type VideoReference struct {
	URL string
}

// AudioStream is an opaque handle to a downloadable audio track.
//
// It is produced by the metadata fetcher and consumed only by the download
// executor; nothing else looks inside it.
type AudioStream interface {
	// Open starts the transfer and returns the body together with the
	// expected size in bytes (or a non-positive value when unknown).
	Open(ctx context.Context) (io.ReadCloser, int64, error)

	// Extension is the file extension for the stream container, without
	// the leading dot (e.g. "mp4").
	Extension() string
}

// VideoMetadata holds what the fetcher resolved for a VideoReference.
//
// It lives only between the fetch and the download of a single item.
type VideoMetadata struct {
	// Author is the channel name that published the video.
	Author string

	// Title is the video title.
	Title string

	// Stream is the best audio-only stream for the video.
	Stream AudioStream

	// ThumbnailURL points at the largest available thumbnail.
	// Empty when the video has none.
	ThumbnailURL string
}

// HasThumbnail returns true if a thumbnail can be downloaded for the video.
func (m *VideoMetadata) HasThumbnail() bool {
	return m.ThumbnailURL != ""
}
