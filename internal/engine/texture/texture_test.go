package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImageToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 1, color.NRGBA{B: 255, A: 255})

	rgba := ImageToRGBA(src)
	if got := rgba.RGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := rgba.RGBAAt(1, 1); got.B != 255 || got.A != 255 {
		t.Errorf("pixel (1,1) = %v, want blue", got)
	}
}

func TestImageToRGBAPassthrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := ImageToRGBA(src); got != src {
		t.Error("RGBA input should pass through without copying")
	}
}

func TestDecodeFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tex.png")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := decodeFile(path)
	if err != nil {
		t.Fatalf("decodeFile: %v", err)
	}
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v, want 8x8", got.Bounds())
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := decodeFile("/nonexistent/path.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
