package render

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{path: "src-tauri/app-icon.png", want: FormatPNG},
		{path: "ICON.PNG", want: FormatPNG},
		{path: "icon.jpg", want: FormatJPEG},
		{path: "icon.jpeg", want: FormatJPEG},
		{path: "icon.bmp", want: FormatBMP},
		{path: "icon.tif", want: FormatTIFF},
		{path: "icon.tiff", want: FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Errorf("FormatFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, path := range []string{"icon", "icon.gif", "icon.svg"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatFromPath(%q): expected ErrUnsupportedFormat, got %v", path, err)
		}
	}
}

func solid(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestWriteImageFormats(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"icon.png":  "png",
		"icon.jpg":  "jpeg",
		"icon.bmp":  "bmp",
		"icon.tiff": "tiff",
	}
	for name, wantFormat := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteImage(path, solid(32, Header)); err != nil {
				t.Fatalf("write: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			cfg, format, err := image.DecodeConfig(f)
			if err != nil {
				t.Fatalf("decode config: %v", err)
			}
			if cfg.Width != 32 || cfg.Height != 32 {
				t.Fatalf("expected 32x32, got %dx%d", cfg.Width, cfg.Height)
			}
			if format != wantFormat {
				t.Fatalf("expected %s, decoded as %s", wantFormat, format)
			}
		})
	}
}

func TestWriteImageReplacesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := WriteImage(path, solid(8, Card)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) == "old" {
		t.Fatal("expected file to be replaced")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, found %d entries", len(entries))
	}
}

type failingImage struct{ image.Image }

// Empty bounds make the PNG encoder fail.
func (failingImage) Bounds() image.Rectangle { return image.Rect(0, 0, 0, 0) }

func TestWriteImageEncodeFailureKeepsOldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := WriteImage(path, failingImage{}); err == nil {
		t.Fatal("expected encode error")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "old" {
		t.Fatalf("expected old content to survive, got %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be removed, found %d entries", len(entries))
	}
}
