package youtube

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/handiism/tube-clipper/internal/model"
	"github.com/kkdai/youtube/v2"
)

// Fetcher resolves video references to metadata and an audio stream.
//
// Fetcher uses github.com/kkdai/youtube/v2 to read the player response of a
// video, then picks the best audio-only format. The returned stream is not
// opened until the download executor asks for it.
//
// Example usage:
//
//	fetcher := NewFetcher(httpClient.Standard())
//
//	meta, err := fetcher.Fetch(ctx, model.VideoReference{URL: url})
//	if err != nil {
//	    var resErr *model.ResolutionError
//	    errors.As(err, &resErr) // always true
//	}
//	fmt.Printf("%s by %s (.%s)\n", meta.Title, meta.Author, meta.Stream.Extension())
type Fetcher struct {
	client *youtube.Client
}

// NewFetcher creates a new Fetcher using the given HTTP client.
// A nil client falls back to http.DefaultClient.
func NewFetcher(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Fetcher{
		client: &youtube.Client{HTTPClient: httpClient},
	}
}

// Fetch resolves author, title and the best audio-only stream for ref.
//
// Every failure is returned as *model.ResolutionError:
//   - malformed or too short video IDs
//   - private, removed, age-restricted or login-only videos
//   - upstream response changes the library cannot parse
//   - videos without any audio-only format (model.ErrNoAudioStream)
func (f *Fetcher) Fetch(ctx context.Context, ref model.VideoReference) (*model.VideoMetadata, error) {
	video, err := f.client.GetVideoContext(ctx, ref.URL)
	if err != nil {
		return nil, &model.ResolutionError{URL: ref.URL, Err: err}
	}

	format, err := bestAudioFormat(video.Formats)
	if err != nil {
		return nil, &model.ResolutionError{URL: ref.URL, Err: err}
	}

	return &model.VideoMetadata{
		Author: video.Author,
		Title:  video.Title,
		Stream: &audioStream{
			client: f.client,
			video:  video,
			format: format,
		},
		ThumbnailURL: bestThumbnail(video.Thumbnails),
	}, nil
}

// audioStream is the model.AudioStream handed out by Fetch.
type audioStream struct {
	client *youtube.Client
	video  *youtube.Video
	format *youtube.Format
}

func (s *audioStream) Open(ctx context.Context) (io.ReadCloser, int64, error) {
	return s.client.GetStreamContext(ctx, s.video, s.format)
}

func (s *audioStream) Extension() string {
	return mimeToExt(s.format.MimeType)
}

// bestAudioFormat picks the audio-only format with the highest bitrate,
// preferring audio/mp4 over other containers.
func bestAudioFormat(formats youtube.FormatList) (*youtube.Format, error) {
	var best, bestMP4 *youtube.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 || f.Width != 0 || f.Height != 0 {
			continue
		}
		if best == nil || bitrate(f) > bitrate(best) {
			best = f
		}
		if mimeToExt(f.MimeType) == "mp4" && (bestMP4 == nil || bitrate(f) > bitrate(bestMP4)) {
			bestMP4 = f
		}
	}

	if bestMP4 != nil {
		return bestMP4, nil
	}
	if best == nil {
		return nil, model.ErrNoAudioStream
	}
	return best, nil
}

func bitrate(f *youtube.Format) int {
	if f.AverageBitrate > 0 {
		return f.AverageBitrate
	}
	return f.Bitrate
}

// bestThumbnail returns the URL of the largest thumbnail, or "".
func bestThumbnail(thumbnails youtube.Thumbnails) string {
	var (
		url  string
		area uint
	)
	for _, th := range thumbnails {
		if a := th.Width * th.Height; url == "" || a > area {
			url, area = th.URL, a
		}
	}
	return url
}

// mimeToExt maps a format MIME type like `audio/mp4; codecs="mp4a.40.2"` to
// a file extension.
func mimeToExt(mimeType string) string {
	mediaType, _, _ := strings.Cut(mimeType, ";")
	_, subtype, ok := strings.Cut(strings.TrimSpace(mediaType), "/")
	if !ok || subtype == "" {
		return model.DefaultExtension
	}
	switch subtype {
	case "mpeg":
		return "mp3"
	case "x-m4a":
		return "m4a"
	}
	return subtype
}
