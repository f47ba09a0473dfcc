package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel.
type Bit bool

const (
	Off = Bit(false)
	On  = Bit(true)
)

// RGBA implements color.Color. On is white, Off is black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Pixels at or above half intensity
// are On.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// ColumnMajor is a 1-bit image stored column by column, each column split in
// pages of 8 pixels packed LSB first.
type ColumnMajor struct {
	Pix   []byte          // len(Pix) == Rect.Dx() * Pages
	Pages int             // Bytes per column
	Rect  image.Rectangle // Image bounds
}

// NewColumnMajor creates a new ColumnMajor image with the specified bounds.
// The height must be a multiple of 8.
func NewColumnMajor(r image.Rectangle) *ColumnMajor {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &ColumnMajor{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	pages := h / 8
	return &ColumnMajor{
		Pix:   make([]byte, w*pages),
		Pages: pages,
		Rect:  r,
	}
}

// ColorModel returns the color model of the image.
func (p *ColumnMajor) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *ColumnMajor) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *ColumnMajor) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y). Pixels outside the bounds are Off.
func (p *ColumnMajor) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.PixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set implements draw.Image.
func (p *ColumnMajor) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y). Pixels outside the bounds are ignored.
func (p *ColumnMajor) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.PixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Fill sets every pixel of the image to b.
func (p *ColumnMajor) Fill(b Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// PixOffset returns the byte offset in Pix and the bit mask of the pixel at
// (x, y). The point must be within bounds.
func (p *ColumnMajor) PixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	offset = x*p.Pages + y>>3
	mask = 1 << uint(y&7)
	return
}
