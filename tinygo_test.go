package ssd1306

import (
	"testing"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/ssd1306test"
	"tinygo.org/x/drivers"
)

// fakeTinyGo forwards Tx to an emulator, the way a machine.I2C would reach
// the panel.
type fakeTinyGo struct {
	emu *ssd1306test.Emulator
	txs int
}

func (f *fakeTinyGo) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return nil
}

func (f *fakeTinyGo) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return f.emu.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func (f *fakeTinyGo) Tx(addr uint16, w, r []byte) error {
	f.txs++
	return f.emu.Tx(addr, w, r)
}

var _ drivers.I2C = (*fakeTinyGo)(nil)

func TestFromTinyGo(t *testing.T) {
	tg := &fakeTinyGo{emu: ssd1306test.New(128, 32, 0x3C)}
	bus := FromTinyGo(tg)

	d, err := NewI2C(bus, &Opts{W: 128, H: 32})
	if err != nil {
		t.Fatalf("NewI2C() error = %v", err)
	}
	if err := d.DrawString("tinygo", 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := d.Flush(); err != nil {
		t.Fatal(err)
	}
	if tg.txs != 25+7 {
		t.Errorf("Tx called %d times, want %d", tg.txs, 25+7)
	}
	if !tg.emu.On() {
		t.Error("display should be on")
	}
	if got, want := tg.emu.Image().Pix, d.Image().Pix; string(got) != string(want) {
		t.Error("panel RAM differs from the device buffer")
	}
	if bus.String() != "tinygo-i2c" {
		t.Errorf("String() = %q", bus.String())
	}
	if err := bus.SetSpeed(400 * physic.KiloHertz); err == nil {
		t.Error("SetSpeed() should fail on a TinyGo bus")
	}
}
