package ui

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/image/draw"
)

// maxTextureSize is the largest edge uploaded; bigger images are scaled down.
const maxTextureSize = 2048

// decodeTexture reads an image file and converts it to RGBA, scaling it so
// that neither edge exceeds maxTextureSize. Row 0 is the top of the image.
func decodeTexture(path string) (*image.RGBA, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	src, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf(`can't decode %s: %w`, path, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf(`%s is empty`, path)
	}
	if w > maxTextureSize || h > maxTextureSize {
		s := float64(maxTextureSize) / float64(max(w, h))
		w, h = max(1, int(float64(w)*s)), max(1, int(float64(h)*s))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	return dst, nil
}

// TextureLoader uploads textures from an assets directory and remembers the
// GL handles by name. Must be used in the GL thread.
type TextureLoader struct {
	dir    string
	logger log.Logger
	ids    map[string]uint32
	failed map[string]bool
}

func NewTextureLoader(dir string, logger log.Logger) *TextureLoader {
	return &TextureLoader{
		dir:    dir,
		logger: logger,
		ids:    map[string]uint32{},
		failed: map[string]bool{},
	}
}

// Get returns the texture for name, loading it on first use. A texture that
// can't be loaded is logged once and reported as missing afterwards.
func (l *TextureLoader) Get(name string) (uint32, bool) {
	if name == "" || l.failed[name] {
		return 0, false
	}
	if id, ok := l.ids[name]; ok {
		return id, true
	}

	path := filepath.Join(l.dir, name)
	img, err := decodeTexture(path)
	if err != nil {
		level.Warn(l.logger).Log("msg", "can't load texture, drawing untextured", "texture", path, "err", err)
		l.failed[name] = true
		return 0, false
	}

	id := uploadTexture(img)
	level.Debug(l.logger).Log("msg", "texture loaded", "texture", path, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	l.ids[name] = id
	return id, true
}

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// Release deletes all uploaded textures.
func (l *TextureLoader) Release() {
	for name, id := range l.ids {
		gl.DeleteTextures(1, &id)
		delete(l.ids, name)
	}
}
