// Package image1bit provides a 1-bit image format for the SSD1306 display controller.
//
// The SSD1306 organizes its memory in pages: horizontal bands 8 pixels tall.
// One byte holds 8 vertically stacked pixels of a single column, with bit 0
// being the topmost row of the page. When the controller is fed in vertical
// addressing mode, the bytes of a column are sent page by page before moving
// to the next column.
//
// Memory layout example for a 2x16 image (2 pages):
//
//	Pix[0] = column 0, rows 0-7
//	Pix[1] = column 0, rows 8-15
//	Pix[2] = column 1, rows 0-7
//	Pix[3] = column 1, rows 8-15
//
// This package provides:
//
// - Bit: a color type that is either On or Off
// - BitModel: a color model converting standard Go colors to Bit
// - ColumnMajor: an image.Image implementation using the layout above
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewColumnMajor(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
