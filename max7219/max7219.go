// Package max7219 controls a chain of MAX7219-driven 8x8 LED dot-matrix
// modules via SPI.
//
// Cascaded modules form one wide viewport (8 columns per module). On top of
// the raw frame interface the driver keeps a bounded scroll-animation
// buffer, so a host program can load a column strip once and step it across
// the viewport while doing other work.
//
// See the examples for how to use this package.
package max7219

import (
	"errors"
	"fmt"

	"github.com/ledkit/marquee"
	"github.com/ledkit/marquee/font"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// MAX7219 register addresses.
const (
	regNoOp        = 0x00
	regDigit0      = 0x01 // Digits 0-7 map to matrix rows 0-7
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// Opts is the configuration for a MAX7219 module chain.
type Opts struct {
	// Modules is the number of cascaded 8x8 modules (1-16, default: 4).
	Modules int

	// Intensity is the LED drive intensity (0-15, default: 7).
	Intensity byte

	// BufferColumns is the capacity of the scroll-animation buffer: the
	// number of columns that can scroll through the viewport in one pass.
	// Defaults to 4x the viewport width when zero.
	BufferColumns int
}

// Dev is the device handle for a MAX7219 module chain.
type Dev struct {
	// Communication
	c conn.Conn // SPI connection

	// Geometry
	modules int // Cascade length
	bufCap  int // Scroll-animation buffer capacity in columns

	// Viewport frame, one byte per column, bit 0 = top row.
	frame []byte

	// Scroll animation state
	anim   []byte // Loaded column strip
	offset int    // Leftmost loaded column currently on screen

	// State
	halted bool
}

// NewSPI creates a new device for a MAX7219 chain connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The chip-select line must be wired to the chain's LOAD/CS pin
// so every transfer latches across all cascaded modules.
//
// opts can be nil to use defaults (4 modules, intensity 7).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{Modules: 4, Intensity: 7}
	}

	if opts.Modules <= 0 || opts.Modules > 16 {
		return nil, errors.New("max7219: modules must be between 1 and 16")
	}
	if opts.Intensity > 15 {
		return nil, errors.New("max7219: intensity must be between 0 and 15")
	}
	bufCap := opts.BufferColumns
	if bufCap == 0 {
		bufCap = 4 * opts.Modules * 8
	}
	if bufCap < 0 {
		return nil, errors.New("max7219: buffer capacity must be positive")
	}

	// Establish SPI connection
	// MAX7219 latches on CS rising edge; Mode0 at 10MHz (its rated maximum)
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:       c,
		modules: opts.Modules,
		bufCap:  bufCap,
		frame:   make([]byte, opts.Modules*8),
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to every module in the chain.
func (d *Dev) init(opts *Opts) error {
	// Leave test mode, disable BCD decoding, scan all 8 rows, set drive
	// intensity and wake the chips up.
	seq := [][2]byte{
		{regDisplayTest, 0x00},
		{regDecodeMode, 0x00},
		{regScanLimit, 0x07},
		{regIntensity, opts.Intensity},
		{regShutdown, 0x01},
	}
	for _, rd := range seq {
		if err := d.broadcast(rd[0], rd[1]); err != nil {
			return fmt.Errorf("max7219: init failed: %w", err)
		}
	}

	// Clear display RAM
	return d.flush()
}

// broadcast writes the same register/data pair to every module in one latch.
func (d *Dev) broadcast(reg, data byte) error {
	buf := make([]byte, 2*d.modules)
	for i := 0; i < d.modules; i++ {
		buf[2*i] = reg
		buf[2*i+1] = data
	}
	return d.c.Tx(buf, nil)
}

// rowData packs one viewport row into a cascade transfer. The last module in
// the chain receives the frame clocked in first, so transfers are emitted in
// reverse module order.
func (d *Dev) rowData(row int) []byte {
	buf := make([]byte, 2*d.modules)
	for m := 0; m < d.modules; m++ {
		var b byte
		for j := 0; j < 8; j++ {
			if d.frame[m*8+j]&(1<<row) != 0 {
				b |= 1 << (7 - j)
			}
		}
		i := d.modules - 1 - m
		buf[2*i] = regDigit0 + byte(row)
		buf[2*i+1] = b
	}
	return buf
}

// flush writes the whole frame to the chain, one row register at a time.
func (d *Dev) flush() error {
	for row := 0; row < 8; row++ {
		if err := d.c.Tx(d.rowData(row), nil); err != nil {
			return err
		}
	}
	return nil
}

// ViewportColumns returns the on-screen width of the chain in columns.
func (d *Dev) ViewportColumns() int {
	return d.modules * 8
}

// BufferColumns returns the scroll-animation buffer capacity in columns.
func (d *Dev) BufferColumns() int {
	return d.bufCap
}

// Geometry describes this device to the chunking algorithm for text set in f.
func (d *Dev) Geometry(f *font.Face) marquee.Geometry {
	return marquee.Geometry{
		ViewportColumns: d.ViewportColumns(),
		BufferColumns:   d.bufCap,
		GlyphWidth:      f.Width,
	}
}

// Write replaces the whole viewport with cols, one byte per column with
// bit 0 as the top row. The data must be exactly ViewportColumns() bytes.
func (d *Dev) Write(cols []byte) (int, error) {
	if d.halted {
		return 0, errors.New("max7219: halted")
	}
	if len(cols) != len(d.frame) {
		return 0, errors.New("max7219: invalid frame size")
	}
	copy(d.frame, cols)
	if err := d.flush(); err != nil {
		return 0, err
	}
	return len(cols), nil
}

// Clear blanks the viewport and drops any loaded animation.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	d.anim = nil
	d.offset = 0
	for i := range d.frame {
		d.frame[i] = 0
	}
	return d.flush()
}

// LoadAnimation loads cols as the current scroll animation and shows its
// first window. Columns beyond the viewport scroll in from the right, one
// per StepScroll call.
//
// The strip may exceed the viewport by at most BufferColumns() columns; a
// longer strip is rejected. Split longer text into segments with
// marquee.Chunk and load them one at a time.
func (d *Dev) LoadAnimation(cols []byte) error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	if len(cols) > d.bufCap+d.ViewportColumns() {
		return errors.New("max7219: animation exceeds scroll buffer capacity")
	}
	d.anim = append(d.anim[:0], cols...)
	d.offset = 0
	return d.showWindow()
}

// ShowSegment renders seg's text in f and loads it as the current scroll
// animation. Segments produced by marquee.Chunk against this device's
// Geometry always fit.
func (d *Dev) ShowSegment(seg *marquee.Segment, f *font.Face) error {
	return d.LoadAnimation(f.Render(seg.Text()))
}

// StepScroll shifts the animation one column left and reports whether the
// final window is on screen. Once done it keeps reporting true without
// moving, so a scheduler may poll it safely after the scroll completes.
func (d *Dev) StepScroll() (bool, error) {
	if d.halted {
		return false, errors.New("max7219: halted")
	}
	if d.offset >= d.maxOffset() {
		return true, nil
	}
	d.offset++
	if err := d.showWindow(); err != nil {
		return false, err
	}
	return d.offset >= d.maxOffset(), nil
}

// StopScroll drops the loaded animation, leaving the current frame on
// screen.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	d.anim = nil
	d.offset = 0
	return nil
}

// maxOffset is the final scroll position: the strip's last viewport-sized
// window, or 0 when the strip fits on screen.
func (d *Dev) maxOffset() int {
	last := len(d.anim) - d.ViewportColumns()
	if last < 0 {
		return 0
	}
	return last
}

// showWindow writes the viewport-sized window at the current scroll offset,
// blank-padded past the end of the strip.
func (d *Dev) showWindow() error {
	for i := range d.frame {
		if d.offset+i < len(d.anim) {
			d.frame[i] = d.anim[d.offset+i]
		} else {
			d.frame[i] = 0
		}
	}
	return d.flush()
}

// SetIntensity sets the LED drive intensity (0-15) on every module.
func (d *Dev) SetIntensity(intensity byte) error {
	if d.halted {
		return errors.New("max7219: halted")
	}
	if intensity > 15 {
		return errors.New("max7219: intensity must be between 0 and 15")
	}
	return d.broadcast(regIntensity, intensity)
}

// Halt puts every module into shutdown mode.
// After calling Halt, the chain will not respond to further commands until
// the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.broadcast(regShutdown, 0x00)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%dx8}", d.modules*8)
}
