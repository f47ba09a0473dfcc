package ssd1306

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// FromTinyGo wraps a TinyGo I²C bus so it can be passed to NewI2C.
//
// The bus must already be configured; its speed cannot be changed through
// the returned value.
func FromTinyGo(b drivers.I2C) i2c.Bus {
	return &tinyGoBus{b: b}
}

type tinyGoBus struct {
	b drivers.I2C
}

func (t *tinyGoBus) String() string {
	return "tinygo-i2c"
}

func (t *tinyGoBus) Tx(addr uint16, w, r []byte) error {
	return t.b.Tx(addr, w, r)
}

func (t *tinyGoBus) SetSpeed(f physic.Frequency) error {
	return errors.New("ssd1306: set the speed when configuring the TinyGo bus")
}
