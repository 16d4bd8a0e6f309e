package thumbnail

import (
	"image"
	"image/jpeg"
	"os"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))

	path, err := Save(dir, src)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open thumbnail: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("thumbnail is not a valid JPEG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > 300 || b.Dy() > 300 {
		t.Fatalf("thumbnail exceeds 300x300: %dx%d", b.Dx(), b.Dy())
	}

	Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("thumbnail still present after Remove")
	}
	Remove(path) // idempotent
	Remove("")   // no-op
}

func TestSave_DistinctNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))

	p1, err := Save(dir, src)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	p2, err := Save(dir, src)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if p1 == p2 {
		t.Fatalf("two saves produced the same path %q", p1)
	}
}
