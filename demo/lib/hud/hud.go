// Package hud rasterizes the status overlay into an RGBA image that the
// canvas package uploads as a texture.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	DefaultFontSize = 14
	padding         = 6
)

type Hud struct {
	font       *truetype.Font
	face       font.Face
	size       float64
	lineHeight int
	fg         image.Image
	bg         image.Image

	last string
	img  *image.RGBA
}

func New(size float64) (*Hud, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	return &Hud{
		font:       f,
		face:       face,
		size:       size,
		lineHeight: int(size*1.4 + 0.5),
		fg:         image.NewUniform(color.RGBA{20, 20, 20, 255}),
		bg:         image.NewUniform(color.NRGBA{255, 255, 255, 180}),
	}, nil
}

// Update redraws the overlay when the text changed. It returns the current
// image and whether it differs from the previous call.
func (h *Hud) Update(lines []string) (*image.RGBA, bool, error) {
	text := strings.Join(lines, "\n")
	if h.img != nil && text == h.last {
		return h.img, false, nil
	}
	img, err := h.Render(lines)
	if err != nil {
		return nil, false, err
	}
	h.img, h.last = img, text
	return img, true, nil
}

// Render draws the lines top-down on a translucent panel sized to fit them.
func (h *Hud) Render(lines []string) (*image.RGBA, error) {
	w, hgt := h.Measure(lines)
	img := image.NewRGBA(image.Rect(0, 0, w, hgt))
	draw.Draw(img, img.Bounds(), h.bg, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(h.font)
	c.SetFontSize(h.size)
	c.SetHinting(font.HintingFull)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(h.fg)

	pt := freetype.Pt(padding, padding+int(c.PointToFixed(h.size)>>6))
	for _, line := range lines {
		if _, err := c.DrawString(line, pt); err != nil {
			return nil, fmt.Errorf("draw hud line %q: %w", line, err)
		}
		pt.Y += c.PointToFixed(float64(h.lineHeight))
	}
	return img, nil
}

func (h *Hud) Measure(lines []string) (w, hgt int) {
	for _, line := range lines {
		w = max(w, font.MeasureString(h.face, line).Ceil())
	}
	return w + 2*padding, len(lines)*h.lineHeight + 2*padding
}
