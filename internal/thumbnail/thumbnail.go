// Package thumbnail renders small JPEG previews of uploaded photos so the
// history UI never has to ship original-size images.
package thumbnail

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const (
	maxSide     = 300 // thumbnails fit inside a 300x300 box
	jpegQuality = 85
)

// Save writes a thumbnail of img under dir and returns the file path. The
// file gets a random uuid name so concurrent uploads never collide.
func Save(dir string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, uuid.NewString()+".jpg")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create thumbnail: %w", err)
	}
	defer f.Close()

	thumb := resize.Thumbnail(maxSide, maxSide, img, resize.Lanczos3)
	if err := jpeg.Encode(f, thumb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return path, nil
}

// Remove deletes a previously saved thumbnail. A missing file is not an
// error: the record may predate thumbnailing or the file was cleaned up.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		// leave the file for manual cleanup; nothing actionable here
		return
	}
}
