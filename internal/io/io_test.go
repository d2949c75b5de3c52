package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		maxSize       int
		wantW, wantH  int
	}{
		{"already fits", 320, 180, 640, 320, 180},
		{"landscape", 1280, 720, 640, 640, 360},
		{"portrait", 720, 1280, 640, 360, 640},
		{"square", 2000, 2000, 1000, 1000, 1000},
		{"no limit", 1280, 720, 0, 1280, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitWithin(tt.width, tt.height, tt.maxSize)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitWithin(%d, %d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, tt.maxSize, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestImageService_Thumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var pngData bytes.Buffer
	if err := png.Encode(&pngData, src); err != nil {
		t.Fatal(err)
	}

	svc := NewImageService()
	out, err := svc.Thumbnail(context.Background(), pngData.Bytes(), 50)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not JPEG: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 25 {
		t.Errorf("thumbnail size = %dx%d, want 50x25", img.Bounds().Dx(), img.Bounds().Dy())
	}

	if _, err := svc.Thumbnail(context.Background(), []byte("not an image"), 50); err == nil {
		t.Error("expected error for invalid image data")
	}
}

func TestFileHelpers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}

	path := filepath.Join(dir, "file.txt")
	if err := WriteFile(context.Background(), path, []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "data" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CreateFile(ctx, filepath.Join(dir, "other.txt")); err == nil {
		t.Error("CreateFile should fail with a cancelled context")
	}
	if _, err := os.Stat(filepath.Join(dir, "other.txt")); !os.IsNotExist(err) {
		t.Error("CreateFile must not create the file when cancelled")
	}
}
