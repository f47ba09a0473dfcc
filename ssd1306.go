// Package ssd1306 controls a monochrome SSD1306 OLED display via I²C.
//
// The SSD1306 drives panels of up to 128x64 pixels. Common resolutions are
// 128x64 and 128x32.
//
// See the examples for how to use this package.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const packageName = "ssd1306"

// Control bytes leading every frame on the wire.
const (
	commandTag byte = 0x80 // Next byte is a command
	dataTag    byte = 0x40 // Following bytes are display memory
)

// Controller opcodes.
const (
	cmdMemoryMode       = 0x20
	cmdColumnAddr       = 0x21
	cmdPageAddr         = 0x22
	cmdRightScroll      = 0x26
	cmdLeftScroll       = 0x27
	cmdDeactivateScroll = 0x2E
	cmdActivateScroll   = 0x2F
	cmdStartLine        = 0x40
	cmdContrast         = 0x81
	cmdChargePump       = 0x8D
	cmdSegmentRemap     = 0xA0
	cmdEntireOn         = 0xA4
	cmdInvert           = 0xA6
	cmdMultiplex        = 0xA8
	cmdDisplayOff       = 0xAE
	cmdDisplayOn        = 0xAF
	cmdCOMScanDir       = 0xC0
	cmdDisplayOffset    = 0xD3
	cmdClockDivide      = 0xD5
	cmdPrecharge        = 0xD9
	cmdCOMPins          = 0xDA
	cmdVCOMDeselect     = 0xDB
)

var (
	// ErrOutOfBounds is returned when a coordinate or a shape extent lies
	// outside the display. Nothing is drawn in that case.
	ErrOutOfBounds = errors.New("ssd1306: out of bounds")
	// ErrInvalidShape is returned for non-positive rectangle dimensions or
	// reversed line endpoints.
	ErrInvalidShape = errors.New("ssd1306: invalid shape")
	// ErrHalted is returned by bus operations after Halt.
	ErrHalted = errors.New("ssd1306: halted")
)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// DefaultOpts is the common 128x64 module at address 0x3C.
var DefaultOpts = Opts{W: 128, H: 64, Addr: 0x3C}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be between 1 and 128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	Addr uint16 // I²C address (default: 0x3C)

	// ExternalVCC is recorded for the caller's benefit. The configuration
	// sequence always enables the internal charge pump.
	ExternalVCC bool
}

// Dev is the device handle for the SSD1306 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	c conn.Conn

	rect        image.Rectangle
	pages       int
	externalVCC bool

	// buf is the data frame: dataTag followed by the bitmap. It is sized once
	// in New and never reallocated.
	buf []byte
	img *image1bit.ColumnMajor // View over buf[1:]
	cmd [2]byte                // Command frame: commandTag, opcode

	halted bool
}

// NewI2C returns a Dev for a display on the I²C bus b, and sends it the
// configuration sequence.
//
// opts can be nil to use DefaultOpts. A zero Addr uses 0x3C.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d, err := New(&i2c.Dev{Bus: b, Addr: addr}, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Configure(); err != nil {
		return nil, err
	}
	return d, nil
}

// New returns a Dev writing its frames to c. It allocates the pixel buffer
// and does not talk to the device: call Configure before the first Flush.
//
// opts can be nil to use DefaultOpts.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}

	pages := opts.H / 8
	rect := image.Rect(0, 0, opts.W, opts.H)
	buf := make([]byte, pages*opts.W+1)
	buf[0] = dataTag

	return &Dev{
		c:           c,
		rect:        rect,
		pages:       pages,
		externalVCC: opts.ExternalVCC,
		buf:         buf,
		img:         &image1bit.ColumnMajor{Pix: buf[1:], Pages: pages, Rect: rect},
		cmd:         [2]byte{commandTag, 0},
	}, nil
}

// Configure sends the initialization sequence and turns the display on.
//
// Each opcode and argument travels in its own command frame. It also brings
// a halted device back.
func (d *Dev) Configure() error {
	cmds := []byte{
		cmdDisplayOff,
		cmdMemoryMode, 0x01, // Vertical addressing: pages of a column first
		cmdStartLine | 0x00,
		cmdSegmentRemap | 0x01, // Column 127 drives SEG0
		cmdMultiplex, byte(d.rect.Dy() - 1),
		cmdCOMScanDir | 0x08, // Scan from COM[N-1] to COM0
		cmdDisplayOffset, 0x00,
		cmdCOMPins, 0x12, // Alternative COM pin configuration
		cmdClockDivide, 0x80,
		cmdPrecharge, 0xF1,
		cmdVCOMDeselect, 0x30,
		cmdContrast, 0xFF,
		cmdEntireOn, // Output follows RAM
		cmdInvert,   // Normal display
		cmdChargePump, 0x14,
		cmdDisplayOn,
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// sendCommand sends a single command byte in its own frame.
func (d *Dev) sendCommand(cmd byte) error {
	d.cmd[1] = cmd
	return wrap(d.c.Tx(d.cmd[:], nil))
}

// sendCommands sends each byte of cmds in its own frame, stopping at the
// first error.
func (d *Dev) sendCommands(cmds []byte) error {
	for _, cmd := range cmds {
		if err := d.sendCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Flush sends the whole pixel buffer to the display.
//
// The column and page windows are set to the full panel, then the buffer is
// written as one data frame. Drawing methods only change memory; Flush is
// the only operation that transmits pixels.
func (d *Dev) Flush() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.sendCommands([]byte{
		cmdColumnAddr, 0, byte(d.rect.Dx() - 1),
		cmdPageAddr, 0, byte(d.pages - 1),
	}); err != nil {
		return err
	}
	return wrap(d.c.Tx(d.buf, nil))
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Pages returns the number of 8-pixel-tall bands of the display.
func (d *Dev) Pages() int {
	return d.pages
}

// ExternalVCC reports the value given in Opts.
func (d *Dev) ExternalVCC() bool {
	return d.externalVCC
}

// Image returns a copy of the pixel buffer.
func (d *Dev) Image() *image1bit.ColumnMajor {
	img := &image1bit.ColumnMajor{
		Pix:   make([]byte, len(d.img.Pix)),
		Pages: d.pages,
		Rect:  d.rect,
	}
	copy(img.Pix, d.img.Pix)
	return img
}

// Write replaces the bitmap with raw pixel data in controller layout and
// flushes it. The data must be exactly Pages() * Bounds().Dx() bytes: byte
// x*Pages()+page holds column x of that page, LSB at the top.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.img.Pix) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	copy(d.img.Pix, pixels)
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw converts src to 1 bit into the dst region of the buffer, then
// flushes the whole buffer.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.img, dst, src, sp, draw.Src)
	return d.Flush()
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{cmdContrast, contrast})
}

// Invert inverts the display colors (lit pixels go dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdInvert) // Normal display
	if invert {
		mode |= 0x01 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt turns the display off.
// After calling Halt, bus operations fail with ErrHalted until Configure is
// called again. Drawing into the buffer keeps working.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(cmdDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollInterval is the number of frames between two scroll steps.
type ScrollInterval byte

// Values as encoded by the controller; they are not in frame order.
const (
	Frames2   ScrollInterval = 0x07
	Frames3   ScrollInterval = 0x04
	Frames4   ScrollInterval = 0x05
	Frames5   ScrollInterval = 0x00
	Frames25  ScrollInterval = 0x06
	Frames64  ScrollInterval = 0x01
	Frames128 ScrollInterval = 0x02
	Frames256 ScrollInterval = 0x03
)

// ScrollHorizontal starts continuous horizontal scrolling of the pages
// startPage through endPage. If right is true, content moves right;
// otherwise it moves left.
//
// The controller may corrupt RAM content if it is written while scrolling:
// call StopScroll before the next Flush.
func (d *Dev) ScrollHorizontal(startPage, endPage int, interval ScrollInterval, right bool) error {
	if d.halted {
		return ErrHalted
	}
	if startPage < 0 || endPage >= d.pages || startPage > endPage {
		return errors.New("ssd1306: scroll page out of range")
	}
	if interval > Frames2 {
		return errors.New("ssd1306: invalid scroll interval")
	}

	scrollCmd := byte(cmdLeftScroll)
	if right {
		scrollCmd = cmdRightScroll
	}

	return d.sendCommands([]byte{
		cmdDeactivateScroll,
		scrollCmd,
		0x00, // Dummy byte
		byte(startPage),
		byte(interval),
		byte(endPage),
		0x00, 0xFF, // Dummy bytes
		cmdActivateScroll,
	})
}

// StopScroll stops scrolling.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommand(cmdDeactivateScroll)
}

var _ display.Drawer = (*Dev)(nil)
