package text

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewTextContext(t *testing.T) {
	if _, err := NewContext(""); err != nil {
		t.Errorf(`%s`, err)
	}

	if _, err := NewContext(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Errorf(`expected error for missing font`)
	}

	if _, err := NewContextFromBytes([]byte("not a font")); err == nil {
		t.Errorf(`expected error for garbage font data`)
	}
}

func TestRender(t *testing.T) {
	c, err := NewContext("")
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	gray := color.Gray{128}

	short, err := c.Render("t=1", 14, gray)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	long, err := c.Render("t=12345.6 scale=1.4", 14, gray)
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	if long.Bounds().Dx() <= short.Bounds().Dx() {
		t.Errorf(`longer text is not wider: %d <= %d`, long.Bounds().Dx(), short.Bounds().Dx())
	}
	if long.Bounds().Dy() != short.Bounds().Dy() {
		t.Errorf(`line heights differ: %d != %d`, long.Bounds().Dy(), short.Bounds().Dy())
	}

	drawn := false
	for _, px := range long.Pix {
		if px != 0 {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Errorf(`no pixels drawn`)
	}

	w, err := os.Create(filepath.Join(t.TempDir(), "test.png"))
	if err != nil {
		t.Fatalf(`%s`, err)
	}
	defer w.Close()

	if err := png.Encode(w, long); err != nil {
		t.Errorf(`can't dump image: %s`, err)
	}
}

func TestRenderMultiline(t *testing.T) {
	c, err := NewContext("")
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	one, err := c.Render("Foo", 20, color.White)
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	bg := color.Gray{0}
	fg := color.Gray{127}
	img, err := c.RenderMultiline([]string{"Foo", "Bar", "mercury"}, 20, bg, fg)
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	if img.Bounds().Dy() != 3*one.Bounds().Dy() {
		t.Errorf(`expected height %d, got %d`, 3*one.Bounds().Dy(), img.Bounds().Dy())
	}
	if a := img.RGBAAt(0, img.Bounds().Dy()-1).A; a != 255 {
		t.Errorf(`expected opaque background, got alpha %d`, a)
	}
}
