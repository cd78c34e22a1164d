package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/lattice"
)

func rows(img *image.Gray) []string {
	var out []string
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		var b []byte
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		out = append(out, string(b))
	}
	return out
}

func TestImageBox(t *testing.T) {
	b := lattice.NewBox(lattice.Pt(0, 0, 0), lattice.Pt(4, 2, 0))
	img := Image(&b)
	assert.Equal(t, []string{"#####", "#####", "#####"}, rows(img))

	img = Image(&b, WithMargin(1))
	assert.Equal(t, []string{
		".......",
		".#####.",
		".#####.",
		".#####.",
		".......",
	}, rows(img))

	// outside of the box's z range
	img = Image(&b, WithZ(1))
	assert.Equal(t, []string{".....", ".....", "....."}, rows(img))
}

func TestImageSegmentOrientation(t *testing.T) {
	s := lattice.NewSegment(lattice.Pt(0, 0, 0), lattice.Pt(4, 2, 0))
	assert.Equal(t, []string{
		"....#",
		"..##.",
		"##...",
	}, rows(Image(s)))
}

func TestImageMatchesContains(t *testing.T) {
	shapes := []lattice.Shape{
		lattice.NewSphere(lattice.Pt(3, -2, 4), 6),
		lattice.NewSegment(lattice.Pt(-3, 1, 0), lattice.Pt(9, 7, 5)),
		lattice.NewMultiShape(
			lattice.NewSphere(lattice.Pt(0, 0, 0), 3),
			lattice.NewSegment(lattice.Pt(5, 5, 0), lattice.Pt(10, 0, 0))),
	}
	for _, s := range shapes {
		for _, z := range []int{-1, 0, 2} {
			img := Image(s, WithZ(z), WithColors(10, 200))
			bb := s.BoundingBox()
			require.Equal(t, bb.Width()+1, img.Bounds().Dx(), "%s", s)
			require.Equal(t, bb.Height()+1, img.Bounds().Dy(), "%s", s)
			for row := range img.Bounds().Dy() {
				for col := range img.Bounds().Dx() {
					pt := lattice.Pt(bb.Min.X+col, bb.Max.Y-row, z)
					want := uint8(10)
					if s.Contains(pt) {
						want = 200
					}
					require.Equal(t, want, img.GrayAt(col, row).Y, "%s at %s", s, pt)
				}
			}
		}
	}
}

func TestImageEmpty(t *testing.T) {
	img := Image(lattice.NewMultiShape())
	assert.True(t, img.Bounds().Empty())
}

func TestScale(t *testing.T) {
	s := lattice.NewSegment(lattice.Pt(0, 0, 0), lattice.Pt(1, 1, 0))
	img := Image(s)
	require.Equal(t, []string{".#", "#."}, rows(img))

	assert.Same(t, img, Scale(img, 1))
	assert.Equal(t, []string{
		"...###",
		"...###",
		"...###",
		"###...",
		"###...",
		"###...",
	}, rows(Scale(img, 3)))

	assert.Panics(t, func() { Scale(img, 0) })
	assert.Panics(t, func() { WithMargin(-1) })
}

func TestWritePNG(t *testing.T) {
	b := lattice.NewBox(lattice.Pt(0, 0, 0), lattice.Pt(3, 3, 0))
	img := Image(&b, WithMargin(2))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	for y := range img.Bounds().Dy() {
		for x := range img.Bounds().Dx() {
			r, _, _, _ := decoded.At(x, y).RGBA()
			assert.Equal(t, uint32(img.GrayAt(x, y).Y)*0x101, r)
		}
	}

	err = WritePNG(&buf, image.NewGray(image.Rectangle{}))
	assert.ErrorContains(t, err, "render: encoding PNG")
}
