// Package config provides configuration management for tube-clipper.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - TUBECLIP_* environment variable overrides
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ~/Music
//	// Polls the clipboard every 0.5 seconds
//	// Only "/" is replaced in file names
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	err = settings.ApplyEnv() // TUBECLIP_DOWNLOAD_DIR=/tmp/music ...
//	err = settings.Validate()
//
// # Saving Settings
//
//	settings.DownloadDirectory = "/custom/path"
//	err := settings.Save("/path/to/config.json")
package config
