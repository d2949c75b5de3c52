// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File creation and writing
//   - Directory creation
//   - Thumbnail resizing and JPEG conversion
//
// # File Operations
//
//	// Ensure the download directory exists
//	err := ioutils.EnsureDir("/home/user/Music")
//
//	// Stream an audio track to disk
//	f, err := ioutils.CreateFile(ctx, "/home/user/Music/Author - Title.mp4")
//
//	// Write small files in one go
//	err := ioutils.WriteFile(ctx, "/home/user/Music/Author - Title.jpg", data)
//
// # Image Processing
//
// The ImageService handles thumbnail preparation:
//
//	svc := ioutils.NewImageService()
//
//	// Fit within 1000x1000 and convert to JPEG
//	jpeg, _ := svc.Thumbnail(ctx, imageData, 1000)
package ioutils
