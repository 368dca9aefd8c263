// Package text rasterises HUD lines into RGBA images.
package text

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

type Context struct {
	ft  *freetype.Context
	fnt *truetype.Font
}

// NewContext loads a TrueType font from a file. An empty name selects the
// built-in Go Regular font.
func NewContext(font string) (*Context, error) {
	if font == "" {
		return NewContextFromBytes(goregular.TTF)
	}

	data, err := os.ReadFile(font)
	if err != nil {
		return nil, err
	}

	return NewContextFromBytes(data)
}

func NewContextFromBytes(data []byte) (*Context, error) {
	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, err
	}

	ctx := freetype.NewContext()
	ctx.SetFont(fnt)
	/* XXX: get appropriate DPI for current display */
	ctx.SetDPI(72)

	return &Context{ctx, fnt}, nil
}

func fixedToFloat64(i fixed.Int26_6) float64 {
	return float64(i) / 64
}

type nullImage struct{}

func (i nullImage) ColorModel() color.Model {
	return color.RGBAModel
}
func (i nullImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, 1, 1)
}
func (i nullImage) At(x, y int) color.Color {
	return color.Black
}
func (i nullImage) Set(x, y int, c color.Color) {
}

// lineHeight is the distance between baselines for the given size in pixels.
func (c *Context) lineHeight(size float64) (height, ascent int) {
	scale := fixed.Int26_6(size * 64)
	bnd := c.fnt.Bounds(scale)
	asc := fixedToFloat64(bnd.Max.Y)
	desc := fixedToFloat64(bnd.Min.Y)
	return int(asc-desc+0.5) + 1, int(asc + 0.5)
}

// Render draws txt on a transparent background. The image is exactly as wide
// as the text advance and one line high.
func (c *Context) Render(txt string, size float64, col color.Color) (*image.RGBA, error) {
	lh, asc := c.lineHeight(size)

	c.ft.SetSrc(image.NewUniform(col))
	c.ft.SetFontSize(size)

	/* Render image to temporary buffer to determine final size */
	tmp := nullImage{}
	c.ft.SetDst(tmp)
	c.ft.SetClip(tmp.Bounds())
	p, err := c.ft.DrawString(txt, fixed.P(0, asc))
	if err != nil {
		return nil, err
	}

	w := int(fixedToFloat64(p.X) + 0.5)
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, lh))
	c.ft.SetDst(dst)
	c.ft.SetClip(dst.Bounds())

	if _, err = c.ft.DrawString(txt, fixed.P(0, asc)); err != nil {
		return nil, err
	}

	return dst, nil
}

// RenderMultiline stacks the rendered lines on an opaque background.
func (c *Context) RenderMultiline(txt []string, size float64, bg, fg color.Color) (*image.RGBA, error) {
	w, h := 0, 0
	imgs := []*image.RGBA{}

	for _, l := range txt {
		i, err := c.Render(l, size, fg)
		if err != nil {
			return nil, err
		}
		if i.Bounds().Dx() > w {
			w = i.Bounds().Dx()
		}
		h += i.Bounds().Dy()
		imgs = append(imgs, i)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	y := 0
	for _, src := range imgs {
		sr := src.Bounds()
		dp := image.Point{0, y}
		r := image.Rectangle{dp, dp.Add(sr.Size())}
		draw.Draw(dst, r, src, sr.Min, draw.Over)
		y += sr.Dy()
	}

	return dst, nil
}
