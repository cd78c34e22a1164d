// Package render draws cross-sections of lattice shapes into grayscale
// images.
//
// Every pixel corresponds to one lattice point of a plane of constant z. A
// pixel is white if the shape contains its point. Images are y-up: the first
// row holds the largest y coordinate.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"

	"golang.org/x/image/draw"

	"honnef.co/go/lattice"
)

type options struct {
	z      option[int]
	margin int
	bg, fg color.Gray
}

type option[T any] struct {
	isSet bool
	v     T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.v = v
}

type Option func(*options)

// WithZ selects the plane to draw. By default, the plane through the center
// of the shape's bounding box is drawn.
func WithZ(z int) Option {
	return func(o *options) { o.z.set(z) }
}

// WithMargin adds n background pixels around the shape.
func WithMargin(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("negative margin %d", n))
	}
	return func(o *options) { o.margin = n }
}

// WithColors sets the background and foreground intensities.
func WithColors(bg, fg uint8) Option {
	return func(o *options) {
		o.bg = color.Gray{Y: bg}
		o.fg = color.Gray{Y: fg}
	}
}

// Image draws the cross-section of s in a plane of constant z. The image
// covers the shape's bounding box, plus margins.
//
// Empty shapes produce an empty image.
func Image(s lattice.Shape, opts ...Option) *image.Gray {
	o := options{bg: color.Gray{Y: 0}, fg: color.Gray{Y: 255}}
	for _, opt := range opts {
		opt(&o)
	}
	if s.IsEmpty() {
		return image.NewGray(image.Rectangle{})
	}

	b := s.BoundingBox()
	z := b.Center().Z
	if o.z.isSet {
		z = o.z.v
	}
	b = b.Inflate(o.margin, o.margin, 0)
	w, h := b.Width()+1, b.Height()+1
	img := image.NewGray(image.Rect(0, 0, w, h))
	lit := 0
	for row := range h {
		y := b.Max.Y - row
		for col := range w {
			c := o.bg
			if s.Contains(lattice.Pt(b.Min.X+col, y, z)) {
				c = o.fg
				lit++
			}
			img.SetGray(col, row, c)
		}
	}
	lattice.Logger().Debug("rendered shape",
		slog.String("shape", s.Kind().String()),
		slog.Int("z", z),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("lit", lit))
	return img
}

// Scale enlarges img by an integer factor, turning every pixel into a
// factor×factor block.
func Scale(img *image.Gray, factor int) *image.Gray {
	if factor < 1 {
		panic(fmt.Sprintf("invalid scale factor %d", factor))
	}
	if factor == 1 {
		return img
	}
	r := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, r.Dx()*factor, r.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, r, draw.Src, nil)
	return dst
}

// WritePNG encodes img as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding PNG: %w", err)
	}
	return nil
}
