package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/tube-clipper/internal/model"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides (TUBECLIP_DOWNLOAD_DIR, ...).
const EnvPrefix = "TUBECLIP"

// Settings holds all configuration options.
type Settings struct {
	// Monitor settings
	DownloadDirectory string  `json:"download_directory" yaml:"download_directory" envconfig:"DOWNLOAD_DIR"`
	PollInterval      float64 `json:"poll_interval" yaml:"poll_interval" envconfig:"POLL_INTERVAL"` // seconds
	MarkFailedAsSeen  bool    `json:"mark_failed_as_seen" yaml:"mark_failed_as_seen" envconfig:"MARK_FAILED_AS_SEEN"`
	StartInTestMode   bool    `json:"start_in_test_mode" yaml:"start_in_test_mode" envconfig:"TEST_MODE"`

	// File naming
	FileNamePolicy string `json:"file_name_policy" yaml:"file_name_policy" envconfig:"FILE_NAME_POLICY"` // slash, strict

	// Thumbnail settings
	SaveThumbnail    bool `json:"save_thumbnail" yaml:"save_thumbnail" envconfig:"SAVE_THUMBNAIL"`
	ThumbnailMaxSize int  `json:"thumbnail_max_size" yaml:"thumbnail_max_size" envconfig:"THUMBNAIL_MAX_SIZE"`

	// Notification settings
	DesktopNotifications bool `json:"desktop_notifications" yaml:"desktop_notifications" envconfig:"DESKTOP_NOTIFICATIONS"`

	// Proxy settings
	ProxyType    string `json:"proxy_type" yaml:"proxy_type" envconfig:"PROXY_TYPE"` // none, system, manual
	ProxyAddress string `json:"proxy_address" yaml:"proxy_address" envconfig:"PROXY_ADDRESS"`
	ProxyPort    int    `json:"proxy_port" yaml:"proxy_port" envconfig:"PROXY_PORT"`

	// Logging
	LogFile string `json:"log_file" yaml:"log_file" envconfig:"LOG_FILE"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	return &Settings{
		DownloadDirectory: filepath.Join(homeDir, "Music"),
		PollInterval:      0.5,
		MarkFailedAsSeen:  false,
		StartInTestMode:   false,

		FileNamePolicy: "slash",

		SaveThumbnail:    false,
		ThumbnailMaxSize: 1000,

		DesktopNotifications: false,

		ProxyType: "system",

		LogFile: filepath.Join(cacheDir, "tube-clipper", "tube-clipper.log"),
	}
}

// DefaultPath returns the settings file used when none is given:
// <user config dir>/tube-clipper/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tube-clipper", "config.json")
}

// Load reads settings from a JSON or YAML file, chosen by extension.
//
// A missing file is not an error: the defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings with TUBECLIP_* environment variables.
// Unset variables leave the current values untouched.
func (s *Settings) ApplyEnv() error {
	return envconfig.Process(EnvPrefix, s)
}

// Validate checks that the settings can drive a monitor.
func (s *Settings) Validate() error {
	if s.DownloadDirectory == "" {
		return fmt.Errorf("download directory is empty")
	}
	if s.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", s.PollInterval)
	}
	if _, err := model.ParseFileNamePolicy(s.FileNamePolicy); err != nil {
		return err
	}
	switch s.ProxyType {
	case "", "none", "system":
	case "manual":
		if s.ProxyAddress == "" || s.ProxyPort <= 0 {
			return fmt.Errorf("manual proxy needs proxy_address and proxy_port")
		}
	default:
		return fmt.Errorf("unknown proxy type %q", s.ProxyType)
	}
	return nil
}

// PollEvery returns the clipboard polling period.
func (s *Settings) PollEvery() time.Duration {
	return time.Duration(s.PollInterval * float64(time.Second))
}

// ToFileNamePolicy converts the configured policy name. Unknown names fall
// back to the slash-only policy; Validate reports them.
func (s *Settings) ToFileNamePolicy() model.FileNamePolicy {
	policy, _ := model.ParseFileNamePolicy(s.FileNamePolicy)
	return policy
}

// ProxyURL returns the manual proxy address, or "" when no manual proxy is set.
func (s *Settings) ProxyURL() string {
	if s.ProxyType != "manual" || s.ProxyAddress == "" {
		return ""
	}
	address := s.ProxyAddress
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return fmt.Sprintf("%s:%d", address, s.ProxyPort)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
