// Package debug holds development aids for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Screenshot grabs the current framebuffer and writes it as a
// timestamped PNG under Dir.
type Screenshot struct {
	Dir    string
	Prefix string
}

// Capture reads the back buffer and saves it. Must run on the GL thread
// after the frame has been drawn, before the buffer swap.
func (s *Screenshot) Capture(width, height int) (string, error) {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return s.save(pixels, width, height)
}

// save flips the rows (GL reads bottom-up) and encodes the PNG.
func (s *Screenshot) save(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("screenshot: want %d bytes, got %d", width*height*4, len(pixels))
	}

	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("screenshot dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	name := fmt.Sprintf("%s_%s.png", s.Prefix, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.Dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("screenshot file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("screenshot encode: %w", err)
	}
	return path, nil
}
