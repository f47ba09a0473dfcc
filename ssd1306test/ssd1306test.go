// Package ssd1306test emulates an SSD1306 controller behind an I²C bus.
//
// Emulator implements i2c.Bus. It decodes the control byte of every write,
// executes commands (including their argument bytes) and stores data bytes
// in display RAM following the active addressing mode, so tests can check
// what a real panel would show.
package ssd1306test

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Addressing modes, as set by command 0x20.
const (
	HorizontalMode byte = 0x00
	VerticalMode   byte = 0x01
	PageMode       byte = 0x02
)

// Emulator is an emulated SSD1306 answering at Addr.
type Emulator struct {
	Addr uint16
	Err  error // Returned by every Tx when set; nothing is recorded

	mu    sync.Mutex
	w     int
	pages int
	ram   []byte // ram[page*w+col]

	mode               byte
	colStart, colEnd   int
	pageStart, pageEnd int
	col, page          int
	op                 byte
	args               []byte
	need               int
	on, inverted       bool
	scrolling          bool
	contrast, mux      byte
	commands           []byte
	frames, dataFrames int
}

// New returns an emulated w by h panel (h a multiple of 8) at addr, in its
// reset state.
func New(w, h int, addr uint16) *Emulator {
	pages := h / 8
	return &Emulator{
		Addr:     addr,
		w:        w,
		pages:    pages,
		ram:      make([]byte, w*pages),
		mode:     PageMode,
		colEnd:   w - 1,
		pageEnd:  pages - 1,
		contrast: 0x7F,
		mux:      byte(h - 1),
	}
}

// String implements i2c.Bus.
func (e *Emulator) String() string {
	return fmt.Sprintf("ssd1306test{%dx%d@0x%02X}", e.w, e.pages*8, e.Addr)
}

// SetSpeed implements i2c.Bus.
func (e *Emulator) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus.
func (e *Emulator) Tx(addr uint16, w, r []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.Err != nil {
		return e.Err
	}
	if addr != e.Addr {
		return fmt.Errorf("ssd1306test: no device at address 0x%02X", addr)
	}
	if len(r) != 0 {
		return errors.New("ssd1306test: reads are not supported")
	}
	if len(w) == 0 {
		return nil
	}
	e.frames++

	for i := 0; i < len(w); {
		ctrl := w[i]
		isData := ctrl&0x40 != 0
		if ctrl&0x80 != 0 {
			// Continuation bit: one byte, then another control byte.
			if i+1 < len(w) {
				e.handle(w[i+1], isData)
			}
			i += 2
			continue
		}
		if isData {
			e.dataFrames++
		}
		for _, b := range w[i+1:] {
			e.handle(b, isData)
		}
		break
	}
	return nil
}

func (e *Emulator) handle(b byte, isData bool) {
	if isData {
		e.data(b)
		return
	}
	e.commands = append(e.commands, b)
	if e.need > 0 {
		e.args = append(e.args, b)
		e.need--
		if e.need == 0 {
			e.apply()
		}
		return
	}
	e.op = b
	e.args = e.args[:0]
	e.need = argCount(b)
	if e.need == 0 {
		e.apply()
	}
}

func argCount(op byte) int {
	switch op {
	case 0x20, 0x81, 0x8D, 0xA8, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 1
	case 0x21, 0x22, 0xA3:
		return 2
	case 0x29, 0x2A:
		return 5
	case 0x26, 0x27:
		return 6
	}
	return 0
}

func (e *Emulator) apply() {
	switch op := e.op; {
	case op <= 0x0F:
		e.col = e.col&0xF0 | int(op&0x0F)
	case op <= 0x1F:
		e.col = e.col&0x0F | int(op&0x0F)<<4
	case op == 0x20:
		e.mode = e.args[0] & 0x03
	case op == 0x21:
		e.colStart, e.colEnd = int(e.args[0]), int(e.args[1])
		e.col = e.colStart
	case op == 0x22:
		e.pageStart, e.pageEnd = int(e.args[0]&0x07), int(e.args[1]&0x07)
		e.page = e.pageStart
	case op == 0x2E:
		e.scrolling = false
	case op == 0x2F:
		e.scrolling = true
	case op == 0x81:
		e.contrast = e.args[0]
	case op == 0xA6, op == 0xA7:
		e.inverted = op == 0xA7
	case op == 0xA8:
		e.mux = e.args[0]
	case op == 0xAE, op == 0xAF:
		e.on = op == 0xAF
	case op >= 0xB0 && op <= 0xB7:
		e.page = int(op & 0x07)
	}
}

func (e *Emulator) data(b byte) {
	if e.col < e.w && e.page < e.pages {
		e.ram[e.page*e.w+e.col] = b
	}
	switch e.mode {
	case HorizontalMode:
		e.col++
		if e.col > e.colEnd {
			e.col = e.colStart
			e.page++
			if e.page > e.pageEnd {
				e.page = e.pageStart
			}
		}
	case VerticalMode:
		e.page++
		if e.page > e.pageEnd {
			e.page = e.pageStart
			e.col++
			if e.col > e.colEnd {
				e.col = e.colStart
			}
		}
	default:
		e.col++
		if e.col >= e.w {
			e.col = 0
		}
	}
}

// Pixel reports whether the RAM bit for (x, y) is set. Segment remapping and
// COM scan direction are not applied.
func (e *Emulator) Pixel(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if x < 0 || x >= e.w || y < 0 || y >= e.pages*8 {
		return false
	}
	return e.ram[(y/8)*e.w+x]&(1<<uint(y%8)) != 0
}

// Image returns a copy of display RAM as an image.
func (e *Emulator) Image() *image1bit.ColumnMajor {
	e.mu.Lock()
	defer e.mu.Unlock()
	img := image1bit.NewColumnMajor(image.Rect(0, 0, e.w, e.pages*8))
	for page := 0; page < e.pages; page++ {
		for col := 0; col < e.w; col++ {
			img.Pix[col*e.pages+page] = e.ram[page*e.w+col]
		}
	}
	return img
}

// On reports whether the display is turned on.
func (e *Emulator) On() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.on
}

// Inverted reports whether the display is inverted.
func (e *Emulator) Inverted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inverted
}

// Scrolling reports whether hardware scrolling is active.
func (e *Emulator) Scrolling() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrolling
}

// Contrast returns the current contrast.
func (e *Emulator) Contrast() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.contrast
}

// MuxRatio returns the last multiplex ratio set.
func (e *Emulator) MuxRatio() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mux
}

// Mode returns the active addressing mode.
func (e *Emulator) Mode() byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Commands returns every command byte received so far, arguments included.
func (e *Emulator) Commands() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]byte(nil), e.commands...)
}

// Frames returns the number of writes received.
func (e *Emulator) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// DataFrames returns the number of writes that carried a stream of display
// data.
func (e *Emulator) DataFrames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dataFrames
}
