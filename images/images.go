// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package images

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	thumbSize   = 400
	jpegQuality = 80
)

// Store writes uploads to the filesystem and hands out opaque image ids.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save keeps the original bytes untouched under uncompressed/ and
// writes a 400x400 center-cropped JPEG next to them. Returns the
// generated image id.
func (s *Store) Save(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	id := uuid.NewString()

	ucDir := filepath.Join(s.dir, "uncompressed")
	if err := os.MkdirAll(ucDir, 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(ucDir, id+"_uc.jpg"), raw, 0o644); err != nil {
		return "", fmt.Errorf("write original: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode upload: %w", err)
	}

	thumb := imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, s.Path(id), imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}

	return id, nil
}

// Path returns the filesystem path of the processed image.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id+".jpg")
}
