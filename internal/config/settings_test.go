package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/handiism/tube-clipper/internal/model"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if filepath.Base(s.DownloadDirectory) != "Music" {
		t.Errorf("DownloadDirectory = %q, want a Music directory", s.DownloadDirectory)
	}
	if s.PollEvery() != 500*time.Millisecond {
		t.Errorf("PollEvery() = %v, want %v", s.PollEvery(), 500*time.Millisecond)
	}
	if s.ToFileNamePolicy() != model.FileNamePolicySlash {
		t.Errorf("ToFileNamePolicy() = %v, want slash", s.ToFileNamePolicy())
	}
	if s.StartInTestMode {
		t.Error("StartInTestMode should default to false")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.PollInterval != DefaultSettings().PollInterval {
		t.Errorf("PollInterval = %v, want default", s.PollInterval)
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "config.json",
			content: `{"download_directory": "/srv/music", "poll_interval": 1.5, "file_name_policy": "strict"}`,
		},
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "download_directory: /srv/music\npoll_interval: 1.5\nfile_name_policy: strict\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if s.DownloadDirectory != "/srv/music" {
				t.Errorf("DownloadDirectory = %q, want %q", s.DownloadDirectory, "/srv/music")
			}
			if s.PollEvery() != 1500*time.Millisecond {
				t.Errorf("PollEvery() = %v, want 1.5s", s.PollEvery())
			}
			if s.ToFileNamePolicy() != model.FileNamePolicyStrict {
				t.Errorf("ToFileNamePolicy() = %v, want strict", s.ToFileNamePolicy())
			}
			// Unset keys keep their defaults
			if s.ThumbnailMaxSize != 1000 {
				t.Errorf("ThumbnailMaxSize = %d, want 1000", s.ThumbnailMaxSize)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, file := range []string{"nested/config.json", "nested/config.yml"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			s := DefaultSettings()
			s.DownloadDirectory = "/tmp/clips"
			s.MarkFailedAsSeen = true

			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if loaded.DownloadDirectory != "/tmp/clips" || !loaded.MarkFailedAsSeen {
				t.Errorf("loaded settings = %+v", loaded)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TUBECLIP_DOWNLOAD_DIR", "/env/music")
	t.Setenv("TUBECLIP_TEST_MODE", "true")
	t.Setenv("TUBECLIP_POLL_INTERVAL", "2")

	s := DefaultSettings()
	s.FileNamePolicy = "strict"
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if s.DownloadDirectory != "/env/music" {
		t.Errorf("DownloadDirectory = %q, want %q", s.DownloadDirectory, "/env/music")
	}
	if !s.StartInTestMode {
		t.Error("StartInTestMode should be set from TUBECLIP_TEST_MODE")
	}
	if s.PollEvery() != 2*time.Second {
		t.Errorf("PollEvery() = %v, want 2s", s.PollEvery())
	}
	if s.FileNamePolicy != "strict" {
		t.Errorf("FileNamePolicy = %q, unset variables must not override", s.FileNamePolicy)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"zero interval", func(s *Settings) { s.PollInterval = 0 }, true},
		{"empty directory", func(s *Settings) { s.DownloadDirectory = "" }, true},
		{"unknown policy", func(s *Settings) { s.FileNamePolicy = "dos" }, true},
		{"unknown proxy", func(s *Settings) { s.ProxyType = "socks" }, true},
		{"manual proxy without address", func(s *Settings) { s.ProxyType = "manual" }, true},
		{"manual proxy", func(s *Settings) {
			s.ProxyType = "manual"
			s.ProxyAddress = "127.0.0.1"
			s.ProxyPort = 8080
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestProxyURL(t *testing.T) {
	s := DefaultSettings()
	if got := s.ProxyURL(); got != "" {
		t.Errorf("ProxyURL() = %q, want empty for system proxy", got)
	}

	s.ProxyType = "manual"
	s.ProxyAddress = "proxy.local"
	s.ProxyPort = 3128
	if got, want := s.ProxyURL(), "http://proxy.local:3128"; got != want {
		t.Errorf("ProxyURL() = %q, want %q", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "config.json" || filepath.Base(filepath.Dir(p)) != "tube-clipper" {
		t.Errorf("DefaultPath() = %q, want .../tube-clipper/config.json", p)
	}
}
