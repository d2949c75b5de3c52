package ioutils

import (
	"context"
	"os"
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	err := WriteFile(ctx, "/music/Author - Title.jpg", jpegData)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CreateFile creates or truncates the file at path for writing.
//
// Example:
//
//	f, err := CreateFile(ctx, "/music/Author - Title.mp4")
//	defer f.Close()
func CreateFile(ctx context.Context, path string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/user/Music")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
