// Package ssd1322 drives SSD1322 4-bit grayscale OLED panels over SPI.
//
// Dev implements periph's display.Drawer. Draw keeps a copy of the frame on
// the panel and only transfers the rows and columns that changed, which
// keeps the per-frame cost of a sliding reveal overlay small.
package ssd1322

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/handwritten/gray4"
)

// ramColumns is the width of the controller's display RAM.
const ramColumns = 480

var errHalted = errors.New("ssd1322: halted")

// Opts is the panel configuration.
type Opts struct {
	W int // Width (default: 256, must be even and ≤480)
	H int // Height (default: 64, must be ≤128)

	// Rotated turns the picture 180°.
	Rotated bool
	// Contrast is the segment current, 0 means maximum.
	Contrast byte
	// RST is the optional hardware reset pin.
	RST gpio.PinIO
}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W%2 != 0 || o.W > ramColumns {
		return errors.New("ssd1322: width must be even and between 2 and 480")
	}
	if o.H <= 0 || o.H > 128 {
		return errors.New("ssd1322: height must be between 1 and 128")
	}
	return nil
}

// Dev is an open panel.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	rect   image.Rectangle
	offset int // first RAM column used, panels are centred in RAM

	shown  *gray4.Image // what the panel currently displays
	next   *gray4.Image // frame being composed by Draw
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI opens a panel on p with dc as the data/command pin.
//
// The port is driven at 10MHz in mode 0. opts can be nil for a 256x64
// panel.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	c, err := p.Connect(10*1000000, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1322: connect: %w", err)
	}

	d := newDev(c, dc, opts)
	if err := d.reset(); err != nil {
		return nil, err
	}
	if err := d.sendCommands(initSequence(opts)); err != nil {
		return nil, fmt.Errorf("ssd1322: init: %w", err)
	}
	if err := d.writeRect(d.rect, d.shown.Pix); err != nil {
		return nil, fmt.Errorf("ssd1322: clear: %w", err)
	}
	if err := d.sendCommand(0xAF); err != nil { // Display ON
		return nil, err
	}
	return d, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) *Dev {
	rect := image.Rect(0, 0, opts.W, opts.H)
	return &Dev{
		c:      c,
		dc:     dc,
		rst:    opts.RST,
		rect:   rect,
		offset: (ramColumns - opts.W) / 2,
		shown:  gray4.New(rect),
		next:   gray4.New(rect),
	}
}

// reset pulses RST when the pin is wired.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1322: pull RST low: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1322: pull RST high: %w", err)
	}
	time.Sleep(200 * time.Millisecond)
	return nil
}

func initSequence(opts *Opts) []byte {
	remap1 := byte(0x14)
	if opts.Rotated {
		remap1 = 0x06
	}
	contrast := opts.Contrast
	if contrast == 0 {
		contrast = 0xFF
	}
	return []byte{
		0xFD, 0x12, // Unlock
		0xAE,       // Display OFF
		0xB3, 0xF2, // Clock divider
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
		0xA0, remap1, 0x11, // Remap, dual COM
		0xAB, 0x01, // Internal VDD
		0xB4, 0xA0, 0xFD, // VSL
		0xC1, contrast, // Contrast
		0xC7, 0x0F, // Master contrast
		0xB9,       // Default grayscale table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Display enhancement
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge
		0xBE, 0x07, // VCOMH
		0xA6, // Normal display
		0xA9, // Exit partial display
	}
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return gray4.Model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw composes src into the frame and transfers the changed region.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if g, ok := src.(*gray4.Image); ok && dst == d.rect && g.Rect == d.rect && sp == d.rect.Min {
		copy(d.next.Pix, g.Pix)
	} else {
		draw.Draw(d.next, dst, src, sp, draw.Src)
	}

	r := damage(d.shown, d.next)
	if r.Empty() {
		return nil
	}
	if err := d.writeRect(r, region(d.next, r)); err != nil {
		return err
	}
	copy(d.shown.Pix, d.next.Pix)
	return nil
}

// SetContrast sets the segment current (0-255).
func (d *Dev) SetContrast(level byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommands([]byte{0xC1, level})
}

// Halt turns the panel off. The Dev is unusable afterwards.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// writeRect sets the RAM window to r and streams pix into it. Column
// addresses count pairs of pixels.
func (d *Dev) writeRect(r image.Rectangle, pix []byte) error {
	cmds := []byte{
		0x15, byte((r.Min.X + d.offset) / 2), byte((r.Max.X - 1 + d.offset) / 2), // Column address
		0x75, byte(r.Min.Y), byte(r.Max.Y - 1), // Row address
		0x5C, // Write RAM
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	return d.sendData(pix)
}

func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}
