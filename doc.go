// Package ssd1306 controls a monochrome SSD1306 OLED display via I²C.
//
// The SSD1306 is a 1-bit OLED controller supporting up to 128×64 pixels.
// This driver implements the display.Drawer interface from periph.io and
// adds simple drawing primitives working directly on the controller's
// memory layout.
//
// # Display Characteristics
//
// - Monochrome, one bit per pixel
// - Support for 128×64, 128×32 and smaller panels (height a multiple of 8)
// - Memory organized in pages: horizontal bands 8 pixels tall
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
//
// # Hardware Connection
//
// Connect the SSD1306 module to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock
//	SDA         → I²C Data
//
// Most modules answer at address 0x3C; some can be strapped to 0x3D.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/ssd1306"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device; this sends the configuration sequence
//		dev, _ := ssd1306.NewI2C(bus, &ssd1306.Opts{
//			W: 128,
//			H: 64,
//		})
//		defer dev.Halt()
//
//		// Draw into the buffer, then send it
//		dev.DrawString("Hello", 0, 0)
//		dev.Rectangle(16, 0, 128, 48, true, false)
//		dev.Flush()
//	}
//
// # Buffer and Frames
//
// The driver keeps a single buffer holding the whole panel. Drawing methods
// (SetPixel, Line, Rectangle, DrawCharacter, DrawString, Clear) only change
// that buffer. Flush sends it in one I²C write, after setting the column and
// page windows to the full panel. There is no partial update.
//
// Every write on the bus is one frame led by a control byte: 0x80 for a
// single command byte, 0x40 for display data. Commands are sent one byte per
// frame.
//
// The buffer is laid out column by column: pixel (x, y) is bit y%8 of byte
// x*pages + y/8. With 8 pages this is byte (y>>3) + (x<<3). Configure puts
// the controller in vertical addressing mode so it consumes the bytes in that
// order.
//
// # Text
//
// DrawString renders digits, letters and '-' with a fixed 8×8 font, see
// package glyph. Other characters render as a blank cell. Text wraps to the
// start of the next row of cells and is cut once a row no longer fits.
//
// # Errors
//
// Coordinates are checked: drawing outside the panel returns an error
// wrapping ErrOutOfBounds and leaves the buffer untouched. Bus errors are
// returned as-is, prefixed with "ssd1306: "; the driver never retries.
//
// # Using a TinyGo Bus
//
// On microcontrollers, wrap the machine I²C bus:
//
//	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
//	dev, err := ssd1306.NewI2C(ssd1306.FromTinyGo(machine.I2C0), nil)
//
// # Testing Without Hardware
//
// Package ssd1306test emulates the controller as an i2c.Bus:
//
//	emu := ssd1306test.New(128, 64, 0x3C)
//	dev, _ := ssd1306.NewI2C(emu, nil)
//	dev.SetPixel(3, 4, true)
//	dev.Flush()
//	emu.Pixel(3, 4) // true
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// Draw converts any image to 1 bit (pixels at or above half intensity are
// lit) and flushes the whole buffer.
package ssd1306
