package ssd1306

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/ssd1306/glyph"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// The drawing methods below only change the in-memory buffer. Call Flush to
// show the result.

func (d *Dev) in(x, y int) bool {
	return image.Point{X: x, Y: y}.In(d.rect)
}

// SetPixel lights (on) or clears the pixel at (x, y), leaving every other
// pixel untouched.
func (d *Dev) SetPixel(x, y int, on bool) error {
	if !d.in(x, y) {
		return d.outOfBounds(x, y)
	}
	d.img.SetBit(x, y, image1bit.Bit(on))
	return nil
}

// Pixel reports whether the pixel at (x, y) is lit. Pixels outside the
// display are reported dark.
func (d *Dev) Pixel(x, y int) bool {
	return bool(d.img.BitAt(x, y))
}

// Clear sets every pixel to on.
func (d *Dev) Clear(on bool) {
	d.img.Fill(image1bit.Bit(on))
}

// Rectangle draws the border of the w by h rectangle whose top left corner
// is (left, top). If fill is set, the interior is set to on as well.
// A rectangle 1 pixel wide or tall degenerates to a line.
func (d *Dev) Rectangle(top, left, w, h int, on, fill bool) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: %dx%d rectangle", ErrInvalidShape, w, h)
	}
	right, bottom := left+w-1, top+h-1
	if !d.in(left, top) {
		return d.outOfBounds(left, top)
	}
	if !d.in(right, bottom) {
		return d.outOfBounds(right, bottom)
	}

	b := image1bit.Bit(on)
	for x := left; x <= right; x++ {
		d.img.SetBit(x, top, b)
		d.img.SetBit(x, bottom, b)
	}
	for y := top; y <= bottom; y++ {
		d.img.SetBit(left, y, b)
		d.img.SetBit(right, y, b)
	}
	if fill {
		for x := left + 1; x < right; x++ {
			for y := top + 1; y < bottom; y++ {
				d.img.SetBit(x, y, b)
			}
		}
	}
	return nil
}

// Line draws a line from (x0, y0) to (x1, y1) inclusive with Bresenham's
// algorithm. Both endpoints must be on the display.
//
// The line is always traced from its leftmost (then topmost) endpoint, so
// swapping the endpoints yields the same pixels.
func (d *Dev) Line(x0, y0, x1, y1 int, on bool) error {
	if !d.in(x0, y0) {
		return d.outOfBounds(x0, y0)
	}
	if !d.in(x1, y1) {
		return d.outOfBounds(x1, y1)
	}
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	b := image1bit.Bit(on)
	for {
		d.img.SetBit(x0, y0, b)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// HorizontalLine sets the pixels (x0, y) through (x1, y). x0 must not be
// greater than x1.
func (d *Dev) HorizontalLine(x0, x1, y int, on bool) error {
	if x0 > x1 {
		return fmt.Errorf("%w: x0 %d > x1 %d", ErrInvalidShape, x0, x1)
	}
	if !d.in(x0, y) {
		return d.outOfBounds(x0, y)
	}
	if !d.in(x1, y) {
		return d.outOfBounds(x1, y)
	}
	b := image1bit.Bit(on)
	for x := x0; x <= x1; x++ {
		d.img.SetBit(x, y, b)
	}
	return nil
}

// VerticalLine sets the pixels (x, y0) through (x, y1). y0 must not be
// greater than y1.
func (d *Dev) VerticalLine(x, y0, y1 int, on bool) error {
	if y0 > y1 {
		return fmt.Errorf("%w: y0 %d > y1 %d", ErrInvalidShape, y0, y1)
	}
	if !d.in(x, y0) {
		return d.outOfBounds(x, y0)
	}
	if !d.in(x, y1) {
		return d.outOfBounds(x, y1)
	}
	b := image1bit.Bit(on)
	for y := y0; y <= y1; y++ {
		d.img.SetBit(x, y, b)
	}
	return nil
}

// DrawCharacter renders c in the 8x8 cell whose top left corner is (x, y).
// The glyph is opaque: unlit glyph pixels clear the cell. Characters without
// a glyph render as a blank cell. The whole cell must be on the display.
func (d *Dev) DrawCharacter(c rune, x, y int) error {
	if !d.in(x, y) {
		return d.outOfBounds(x, y)
	}
	if !d.in(x+glyph.Width-1, y+glyph.Height-1) {
		return d.outOfBounds(x+glyph.Width-1, y+glyph.Height-1)
	}

	g := glyph.Lookup(c)
	for i := 0; i < glyph.Width; i++ {
		for j := 0; j < glyph.Height; j++ {
			d.img.SetBit(x+i, y+j, image1bit.Bit(g.Set(i, j)))
		}
	}
	return nil
}

// DrawString renders s starting at (x, y), 8 pixels per character. When the
// next character would not fit horizontally it continues at x=0 on the next
// row of cells; rendering stops silently once a row would not fit
// vertically.
func (d *Dev) DrawString(s string, x, y int) error {
	for _, c := range s {
		if x+glyph.Width > d.rect.Dx() {
			x = 0
			y += glyph.Height
		}
		if y+glyph.Height > d.rect.Dy() {
			return nil
		}
		if err := d.DrawCharacter(c, x, y); err != nil {
			return err
		}
		x += glyph.Width
	}
	return nil
}

func (d *Dev) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d) on %dx%d display", ErrOutOfBounds, x, y, d.rect.Dx(), d.rect.Dy())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
