// Package glyph holds the fixed 8x8 font used by the ssd1306 text routines.
//
// Each Bitmap is stored the way the controller stores display memory: byte i
// is column i of the glyph and bit j of that byte is row j (bit 0 is the top
// row). The table is densely packed by character class: slot 0 is blank,
// digits follow, then uppercase letters, then lowercase letters.
package glyph

// Width and Height are the dimensions of every glyph, in pixels.
const (
	Width  = 8
	Height = 8
)

// Base slots of each character class in the table.
const (
	DigitBase = 1
	UpperBase = 11
	LowerBase = 37
)

// Bitmap is one 8x8 glyph, one byte per column.
type Bitmap [Width]byte

// Set reports whether the pixel at column col, row row is lit.
func (b Bitmap) Set(col, row int) bool {
	return b[col]&(1<<uint(row)) != 0
}

// Class is the category a character falls in for lookup purposes.
type Class int

const (
	Other Class = iota
	Digit
	Upper
	Lower
	Hyphen
)

// hyphen has only row 3 set in every column.
var hyphen = Bitmap{0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08}

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case r >= '0' && r <= '9':
		return Digit
	case r >= 'A' && r <= 'Z':
		return Upper
	case r >= 'a' && r <= 'z':
		return Lower
	case r == '-':
		return Hyphen
	}
	return Other
}

// Slot returns the table slot used for r. ok is false for characters that are
// not stored in the table (hyphen and anything unsupported).
func Slot(r rune) (slot int, ok bool) {
	switch Classify(r) {
	case Digit:
		return int(r-'0') + DigitBase, true
	case Upper:
		return int(r-'A') + UpperBase, true
	case Lower:
		return int(r-'a') + LowerBase, true
	}
	return 0, false
}

// Lookup returns the bitmap for r. Unsupported characters map to the blank
// glyph in slot 0.
func Lookup(r rune) Bitmap {
	if Classify(r) == Hyphen {
		return hyphen
	}
	slot, _ := Slot(r)
	return table[slot]
}

// At returns the bitmap stored in slot i, or false if i is outside the table.
func At(i int) (Bitmap, bool) {
	if i < 0 || i >= len(table) {
		return Bitmap{}, false
	}
	return table[i], true
}

// Len is the number of slots in the table.
func Len() int {
	return len(table)
}

var table = [...]Bitmap{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // blank
	{0x3E, 0x7F, 0x71, 0x59, 0x4D, 0x7F, 0x3E, 0x00}, // 0
	{0x40, 0x42, 0x7F, 0x7F, 0x40, 0x40, 0x00, 0x00}, // 1
	{0x62, 0x73, 0x59, 0x49, 0x6F, 0x66, 0x00, 0x00}, // 2
	{0x22, 0x63, 0x49, 0x49, 0x7F, 0x36, 0x00, 0x00}, // 3
	{0x18, 0x1C, 0x16, 0x53, 0x7F, 0x7F, 0x50, 0x00}, // 4
	{0x27, 0x67, 0x45, 0x45, 0x7D, 0x39, 0x00, 0x00}, // 5
	{0x3C, 0x7E, 0x4B, 0x49, 0x79, 0x30, 0x00, 0x00}, // 6
	{0x03, 0x03, 0x71, 0x79, 0x0F, 0x07, 0x00, 0x00}, // 7
	{0x36, 0x7F, 0x49, 0x49, 0x7F, 0x36, 0x00, 0x00}, // 8
	{0x06, 0x4F, 0x49, 0x69, 0x3F, 0x1E, 0x00, 0x00}, // 9
	{0x7C, 0x7E, 0x13, 0x13, 0x7E, 0x7C, 0x00, 0x00}, // A
	{0x41, 0x7F, 0x7F, 0x49, 0x49, 0x7F, 0x36, 0x00}, // B
	{0x1C, 0x3E, 0x63, 0x41, 0x41, 0x63, 0x22, 0x00}, // C
	{0x41, 0x7F, 0x7F, 0x41, 0x63, 0x3E, 0x1C, 0x00}, // D
	{0x41, 0x7F, 0x7F, 0x49, 0x5D, 0x41, 0x63, 0x00}, // E
	{0x41, 0x7F, 0x7F, 0x49, 0x1D, 0x01, 0x03, 0x00}, // F
	{0x1C, 0x3E, 0x63, 0x41, 0x51, 0x73, 0x72, 0x00}, // G
	{0x7F, 0x7F, 0x08, 0x08, 0x7F, 0x7F, 0x00, 0x00}, // H
	{0x00, 0x41, 0x7F, 0x7F, 0x41, 0x00, 0x00, 0x00}, // I
	{0x30, 0x70, 0x40, 0x41, 0x7F, 0x3F, 0x01, 0x00}, // J
	{0x41, 0x7F, 0x7F, 0x08, 0x1C, 0x77, 0x63, 0x00}, // K
	{0x41, 0x7F, 0x7F, 0x41, 0x40, 0x60, 0x70, 0x00}, // L
	{0x7F, 0x7F, 0x0E, 0x1C, 0x0E, 0x7F, 0x7F, 0x00}, // M
	{0x7F, 0x7F, 0x06, 0x0C, 0x18, 0x7F, 0x7F, 0x00}, // N
	{0x1C, 0x3E, 0x63, 0x41, 0x63, 0x3E, 0x1C, 0x00}, // O
	{0x41, 0x7F, 0x7F, 0x49, 0x09, 0x0F, 0x06, 0x00}, // P
	{0x1E, 0x3F, 0x21, 0x71, 0x7F, 0x5E, 0x00, 0x00}, // Q
	{0x41, 0x7F, 0x7F, 0x09, 0x19, 0x7F, 0x66, 0x00}, // R
	{0x26, 0x6F, 0x4D, 0x59, 0x73, 0x32, 0x00, 0x00}, // S
	{0x03, 0x41, 0x7F, 0x7F, 0x41, 0x03, 0x00, 0x00}, // T
	{0x7F, 0x7F, 0x40, 0x40, 0x7F, 0x7F, 0x00, 0x00}, // U
	{0x1F, 0x3F, 0x60, 0x60, 0x3F, 0x1F, 0x00, 0x00}, // V
	{0x7F, 0x7F, 0x30, 0x18, 0x30, 0x7F, 0x7F, 0x00}, // W
	{0x43, 0x67, 0x3C, 0x18, 0x3C, 0x67, 0x43, 0x00}, // X
	{0x07, 0x4F, 0x78, 0x78, 0x4F, 0x07, 0x00, 0x00}, // Y
	{0x47, 0x63, 0x71, 0x59, 0x4D, 0x67, 0x73, 0x00}, // Z
	{0x20, 0x74, 0x54, 0x54, 0x3C, 0x78, 0x40, 0x00}, // a
	{0x41, 0x7F, 0x3F, 0x48, 0x48, 0x78, 0x30, 0x00}, // b
	{0x38, 0x7C, 0x44, 0x44, 0x6C, 0x28, 0x00, 0x00}, // c
	{0x30, 0x78, 0x48, 0x49, 0x3F, 0x7F, 0x40, 0x00}, // d
	{0x38, 0x7C, 0x54, 0x54, 0x5C, 0x18, 0x00, 0x00}, // e
	{0x48, 0x7E, 0x7F, 0x49, 0x03, 0x02, 0x00, 0x00}, // f
	{0x98, 0xBC, 0xA4, 0xA4, 0xF8, 0x7C, 0x04, 0x00}, // g
	{0x41, 0x7F, 0x7F, 0x08, 0x04, 0x7C, 0x78, 0x00}, // h
	{0x00, 0x44, 0x7D, 0x7D, 0x40, 0x00, 0x00, 0x00}, // i
	{0x60, 0xE0, 0x80, 0x80, 0xFD, 0x7D, 0x00, 0x00}, // j
	{0x41, 0x7F, 0x7F, 0x10, 0x38, 0x6C, 0x44, 0x00}, // k
	{0x00, 0x41, 0x7F, 0x7F, 0x40, 0x00, 0x00, 0x00}, // l
	{0x7C, 0x7C, 0x18, 0x38, 0x1C, 0x7C, 0x78, 0x00}, // m
	{0x7C, 0x7C, 0x04, 0x04, 0x7C, 0x78, 0x00, 0x00}, // n
	{0x38, 0x7C, 0x44, 0x44, 0x7C, 0x38, 0x00, 0x00}, // o
	{0x84, 0xFC, 0xF8, 0xA4, 0x24, 0x3C, 0x18, 0x00}, // p
	{0x18, 0x3C, 0x24, 0xA4, 0xF8, 0xFC, 0x84, 0x00}, // q
	{0x44, 0x7C, 0x78, 0x4C, 0x04, 0x1C, 0x18, 0x00}, // r
	{0x48, 0x5C, 0x54, 0x54, 0x74, 0x24, 0x00, 0x00}, // s
	{0x00, 0x04, 0x3E, 0x7F, 0x44, 0x24, 0x00, 0x00}, // t
	{0x3C, 0x7C, 0x40, 0x40, 0x3C, 0x7C, 0x40, 0x00}, // u
	{0x1C, 0x3C, 0x60, 0x60, 0x3C, 0x1C, 0x00, 0x00}, // v
	{0x3C, 0x7C, 0x70, 0x38, 0x70, 0x7C, 0x3C, 0x00}, // w
	{0x44, 0x6C, 0x38, 0x10, 0x38, 0x6C, 0x44, 0x00}, // x
	{0x9C, 0xBC, 0xA0, 0xA0, 0xFC, 0x7C, 0x00, 0x00}, // y
	{0x4C, 0x64, 0x74, 0x5C, 0x4C, 0x64, 0x00, 0x00}, // z
}
