package mask

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the alpha value a pixel must exceed to be set in a mask
const AlphaThreshold = 127

// Mask is a binary per-pixel occupancy bitmap.
// Rows are packed into 64-bit words, bit i of a word is pixel (word*64 + i).
type Mask struct {
	width  int
	height int
	stride int // words per row
	bits   []uint64
}

// New creates an empty mask of the given size
func New(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 63) / 64
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]uint64, stride*height),
	}
}

// FromImage builds a mask from the opaque pixels of an image
func FromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < m.height; y++ {
			row := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < m.width; x++ {
				if row[x*4+3] > AlphaThreshold {
					m.Set(x, y, true)
				}
			}
		}
		return m
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Size returns the mask dimensions
func (m *Mask) Size() (width, height int) {
	return m.width, m.height
}

// Get reports whether the pixel at (x, y) is set. Out of range pixels are unset.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.stride+x>>6]&(1<<uint(x&63)) != 0
}

// Set sets or clears the pixel at (x, y). Out of range pixels are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	i := y*m.stride + x>>6
	bit := uint64(1) << uint(x&63)
	if on {
		m.bits[i] |= bit
	} else {
		m.bits[i] &^= bit
	}
}

// Count returns the number of set pixels
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// BoundingRect returns the smallest rectangle containing every set pixel
func (m *Mask) BoundingRect() image.Rectangle {
	var r image.Rectangle
	found := false
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.Get(x, y) {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if !found {
				r = p
				found = true
			} else {
				r = r.Union(p)
			}
		}
	}
	return r
}

// Overlap places other with its top-left corner at offset and returns the
// first pixel set in both masks, in this mask's coordinates. Rows are scanned
// top to bottom, columns left to right.
func (m *Mask) Overlap(other *Mask, offset image.Point) (image.Point, bool) {
	area := image.Rect(0, 0, m.width, m.height).Intersect(
		image.Rect(offset.X, offset.Y, offset.X+other.width, offset.Y+other.height))
	if area.Empty() {
		return image.Point{}, false
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x += 64 {
			w := m.chunk(y, x) & other.chunk(y-offset.Y, x-offset.X)
			if rem := area.Max.X - x; rem < 64 {
				w &= (uint64(1) << uint(rem)) - 1
			}
			if w != 0 {
				return image.Pt(x+bits.TrailingZeros64(w), y), true
			}
		}
	}
	return image.Point{}, false
}

// chunk returns the 64 pixels of row y starting at column x as a word.
// Pixels past the right edge read as zero.
func (m *Mask) chunk(y, x int) uint64 {
	row := m.bits[y*m.stride : (y+1)*m.stride]
	i, s := x>>6, uint(x&63)
	v := row[i] >> s
	if s != 0 && i+1 < len(row) {
		v |= row[i+1] << (64 - s)
	}
	return v
}
