package youtube

import (
	"errors"
	"testing"

	"github.com/handiism/tube-clipper/internal/model"
	"github.com/kkdai/youtube/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		snapshot string
		wantOK   bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"prefix only", "https://www.youtube.com/", true},
		{"shorts", "https://www.youtube.com/shorts/abc", true},
		{"empty", "", false},
		{"plain text", "hello world", false},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", false},
		{"no www", "https://youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"http", "http://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"leading space", " https://www.youtube.com/watch?v=x", false},
		{"other host", "https://www.example.com/watch?v=x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := Classify(tt.snapshot)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.snapshot, ok, tt.wantOK)
			}
			if ok && ref.URL != tt.snapshot {
				t.Errorf("ref.URL = %q, want %q", ref.URL, tt.snapshot)
			}
			if !ok && ref.URL != "" {
				t.Errorf("ref.URL = %q, want empty on miss", ref.URL)
			}
		})
	}
}

func TestBestAudioFormat(t *testing.T) {
	tests := []struct {
		name     string
		formats  youtube.FormatList
		wantItag int
		wantErr  bool
	}{
		{
			name: "prefers mp4 audio",
			formats: youtube.FormatList{
				{ItagNo: 18, MimeType: `video/mp4; codecs="avc1, mp4a"`, AudioChannels: 2, Width: 640, Height: 360, Bitrate: 500000},
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, AverageBitrate: 129000},
				{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, AverageBitrate: 140000},
			},
			wantItag: 140,
		},
		{
			name: "highest mp4 bitrate",
			formats: youtube.FormatList{
				{ItagNo: 139, MimeType: `audio/mp4; codecs="mp4a.40.5"`, AudioChannels: 2, AverageBitrate: 48000},
				{ItagNo: 140, MimeType: `audio/mp4; codecs="mp4a.40.2"`, AudioChannels: 2, AverageBitrate: 129000},
			},
			wantItag: 140,
		},
		{
			name: "falls back to webm",
			formats: youtube.FormatList{
				{ItagNo: 249, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, Bitrate: 50000},
				{ItagNo: 251, MimeType: `audio/webm; codecs="opus"`, AudioChannels: 2, Bitrate: 160000},
			},
			wantItag: 251,
		},
		{
			name: "no audio only formats",
			formats: youtube.FormatList{
				{ItagNo: 18, MimeType: `video/mp4`, AudioChannels: 2, Width: 640, Height: 360},
				{ItagNo: 137, MimeType: `video/mp4`, Width: 1920, Height: 1080},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bestAudioFormat(tt.formats)
			if tt.wantErr {
				if !errors.Is(err, model.ErrNoAudioStream) {
					t.Errorf("err = %v, want ErrNoAudioStream", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ItagNo != tt.wantItag {
				t.Errorf("itag = %d, want %d", got.ItagNo, tt.wantItag)
			}
		})
	}
}

func TestMimeToExt(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{`audio/mp4; codecs="mp4a.40.2"`, "mp4"},
		{`audio/webm; codecs="opus"`, "webm"},
		{"audio/mpeg", "mp3"},
		{"", "mp4"},
		{"garbage", "mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := mimeToExt(tt.mime); got != tt.want {
				t.Errorf("mimeToExt(%q) = %q, want %q", tt.mime, got, tt.want)
			}
		})
	}
}

func TestBestThumbnail(t *testing.T) {
	thumbs := youtube.Thumbnails{
		{URL: "https://i.ytimg.com/vi/x/default.jpg", Width: 120, Height: 90},
		{URL: "https://i.ytimg.com/vi/x/maxresdefault.jpg", Width: 1280, Height: 720},
		{URL: "https://i.ytimg.com/vi/x/hqdefault.jpg", Width: 480, Height: 360},
	}

	if got := bestThumbnail(thumbs); got != "https://i.ytimg.com/vi/x/maxresdefault.jpg" {
		t.Errorf("bestThumbnail() = %q", got)
	}
	if got := bestThumbnail(nil); got != "" {
		t.Errorf("bestThumbnail(nil) = %q, want empty", got)
	}
}

func TestAudioStreamExtension(t *testing.T) {
	s := &audioStream{format: &youtube.Format{MimeType: `audio/webm; codecs="opus"`}}
	var stream model.AudioStream = s
	if stream.Extension() != "webm" {
		t.Errorf("Extension() = %q, want %q", stream.Extension(), "webm")
	}
}
