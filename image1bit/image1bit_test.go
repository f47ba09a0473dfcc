package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off", Off, 0x0000},
		{"on", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough", On, On},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.Gray{Y: 0x40}, Off},
		{"light gray", color.Gray{Y: 0xC0}, On},
		{"pure green", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, On},
		{"pure blue", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, Off},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitModel.Convert(tt.input).(Bit); got != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewColumnMajor(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantPages  int
		wantPixLen int
	}{
		{"128x64", image.Rect(0, 0, 128, 64), false, 8, 1024},
		{"128x32", image.Rect(0, 0, 128, 32), false, 4, 512},
		{"1x8", image.Rect(0, 0, 1, 8), false, 1, 1},
		{"offset rect", image.Rect(10, 16, 14, 32), false, 2, 8},
		{"height not multiple of 8 panics", image.Rect(0, 0, 128, 60), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewColumnMajor(tt.rect)
			if tt.wantPanic {
				return
			}
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", img.Pages, tt.wantPages)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestColumnMajorPacking(t *testing.T) {
	img := NewColumnMajor(image.Rect(0, 0, 2, 16))

	img.SetBit(0, 0, On)
	img.SetBit(0, 9, On)
	img.SetBit(1, 7, On)
	img.SetBit(1, 15, On)

	want := []byte{0x01, 0x02, 0x80, 0x80}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestColumnMajorPixOffset(t *testing.T) {
	img := NewColumnMajor(image.Rect(0, 0, 128, 64))
	for x := 0; x < 128; x++ {
		for y := 0; y < 64; y++ {
			offset, mask := img.PixOffset(x, y)
			// At 8 pages this is the classic (y>>3)+(x<<3) index.
			if want := (y >> 3) + (x << 3); offset != want {
				t.Fatalf("PixOffset(%d, %d) offset = %d, want %d", x, y, offset, want)
			}
			if want := byte(1) << uint(y&7); mask != want {
				t.Fatalf("PixOffset(%d, %d) mask = 0x%02X, want 0x%02X", x, y, mask, want)
			}
		}
	}
}

func TestColumnMajorSetClearsOnlyOneBit(t *testing.T) {
	img := NewColumnMajor(image.Rect(0, 0, 4, 8))
	img.Fill(On)
	img.SetBit(2, 5, Off)
	for x := 0; x < 4; x++ {
		for y := 0; y < 8; y++ {
			want := On
			if x == 2 && y == 5 {
				want = Off
			}
			if got := img.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestColumnMajorOutOfBounds(t *testing.T) {
	img := NewColumnMajor(image.Rect(0, 0, 4, 8))
	img.SetBit(4, 0, On)
	img.SetBit(0, 8, On)
	img.SetBit(-1, 0, On)
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X, want 0", i, b)
		}
	}
	if img.BitAt(100, 100) != Off {
		t.Error("BitAt outside bounds should be Off")
	}
}

func TestColumnMajorOffsetRect(t *testing.T) {
	img := NewColumnMajor(image.Rect(10, 8, 12, 16))
	img.SetBit(11, 9, On)
	if img.Pix[1] != 0x02 {
		t.Errorf("Pix[1] = 0x%02X, want 0x02", img.Pix[1])
	}
	if !img.BitAt(11, 9) {
		t.Error("BitAt(11, 9) = Off, want On")
	}
}

func TestColumnMajorDraw(t *testing.T) {
	img := NewColumnMajor(image.Rect(0, 0, 8, 8))
	draw.Draw(img, image.Rect(2, 2, 4, 4), image.NewUniform(color.White), image.Point{}, draw.Src)

	count := 0
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if img.BitAt(x, y) {
				count++
			}
		}
	}
	if count != 4 {
		t.Errorf("lit pixels = %d, want 4", count)
	}
	if img.At(3, 3) != On {
		t.Errorf("At(3, 3) = %v, want On", img.At(3, 3))
	}
}
