package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a small uniform PNG into dir under name.
func writePNG(t *testing.T, dir, name string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "b-cover.png", color.RGBA{R: 255, A: 255})
	writePNG(t, dir, "a-cover.png", color.RGBA{B: 255, A: 255})

	// A corrupt image and an unrelated file are both skipped.
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadDirectory(nil, dir)
	if err != nil {
		t.Fatalf("LoadDirectory returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}
	// Records come back in sorted file name order.
	if filepath.Base(records[0].ID) != "a-cover.png" || filepath.Base(records[1].ID) != "b-cover.png" {
		t.Errorf("records out of order: %s, %s", records[0].ID, records[1].ID)
	}
}

func TestLoadDirectoryLabels(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "cover.png", color.RGBA{G: 255, A: 255})

	manifest := `cover.png:
  title: Holland, 1945
  artist: Neutral Milk Hotel
`
	if err := os.WriteFile(filepath.Join(dir, "labels.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadDirectory(nil, dir)
	if err != nil {
		t.Fatalf("LoadDirectory returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("loaded %d records, want 1", len(records))
	}
	if records[0].Title != "Holland, 1945" {
		t.Errorf("Title = %q", records[0].Title)
	}
	if records[0].Artist != "Neutral Milk Hotel" {
		t.Errorf("Artist = %q", records[0].Artist)
	}
}

func TestLoadDirectoryErrors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		if _, err := LoadDirectory(nil, filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("no decodable images", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDirectory(nil, dir); err == nil {
			t.Error("expected error for directory without images")
		}
	})
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "cover.jpg", want: true},
		{path: "cover.JPEG", want: true},
		{path: "cover.png", want: true},
		{path: "cover.webp", want: true},
		{path: "cover.gif", want: true},
		{path: "cover.txt", want: false},
		{path: "cover", want: false},
	}

	for _, tt := range tests {
		if got := isImageFile(tt.path); got != tt.want {
			t.Errorf("isImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
