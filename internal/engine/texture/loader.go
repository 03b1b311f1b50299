package texture

import (
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/hummingtop/internal/logger"
)

// Loaded reports one texture that finished decoding and was uploaded.
type Loaded struct {
	Name string
	ID   uint32
}

type decoded struct {
	name string
	img  *image.RGBA
	err  error
}

// Loader decodes texture files on background goroutines and uploads them
// on the GL thread when polled. Load failures are logged and dropped; the
// caller keeps whatever texture (normally the placeholder) was bound.
type Loader struct {
	results chan decoded
}

// NewLoader creates an async texture loader.
func NewLoader() *Loader {
	return &Loader{
		results: make(chan decoded, 8),
	}
}

// Load starts decoding the file in the background. The result is picked up
// by a later Poll on the GL thread.
func (l *Loader) Load(name, path string) {
	go func() {
		img, err := decodeFile(path)
		l.results <- decoded{name: name, img: img, err: err}
	}()
}

// Poll uploads any finished decodes and returns them. Must be called on
// the GL thread; never blocks.
func (l *Loader) Poll() []Loaded {
	var ready []Loaded
	for {
		select {
		case d := <-l.results:
			if d.err != nil {
				logger.Warn("texture load failed, keeping placeholder",
					zap.String("texture", d.name),
					zap.Error(d.err),
				)
				continue
			}
			id := Upload(d.img)
			logger.Debug("texture loaded",
				zap.String("texture", d.name),
				zap.Uint32("id", id),
				zap.Int("width", d.img.Bounds().Dx()),
				zap.Int("height", d.img.Bounds().Dy()),
			)
			ready = append(ready, Loaded{Name: d.name, ID: id})
		default:
			return ready
		}
	}
}
