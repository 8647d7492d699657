// Package marquee scrolls arbitrarily long text across fixed-width LED
// dot-matrix displays whose scroll-animation buffer can only hold a limited
// number of glyph columns at once.
//
// A display like a chain of MAX7219 8x8 modules cannot animate an
// arbitrarily long string in one pass: the animation buffer caps how many
// columns can scroll through the viewport before it must be refilled. This
// package splits a message into the minimum number of bounded, overlapping
// segments that each fit the buffer, and links them into a chain a host
// program can play back one after another, with no visible seam at the
// hand-offs.
//
// # How Seamless Hand-Off Works
//
// Three quantities, all derived from the display geometry, drive the
// chunking algorithm:
//
//   - ScreenChars: characters visible on screen at once
//     (viewport columns / glyph width)
//   - ScrollChars: new characters the buffer can scroll through in one pass
//     (buffer columns / glyph width)
//   - SegmentChars: most characters one segment may hold
//     (ScrollChars + ScreenChars)
//
// Every segment after the first repeats the final ScreenChars characters of
// its predecessor. When a segment finishes scrolling, those characters are
// exactly what is left on screen, and they are exactly what the next segment
// starts with, so the viewer never sees a skip or a repeat at the switch.
//
// # Basic Usage
//
// Example of scrolling a long message on a 4-module MAX7219 chain:
//
//	package main
//
//	import (
//		"log"
//		"time"
//
//		"github.com/ledkit/marquee"
//		"github.com/ledkit/marquee/font"
//		"github.com/ledkit/marquee/max7219"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device
//		dev, _ := max7219.NewSPI(spiBus, &max7219.Opts{Modules: 4})
//		defer dev.Halt()
//
//		// Split the message to fit the scroll buffer
//		head, err := marquee.Chunk(
//			"The quick brown fox jumps over the lazy dog",
//			dev.Geometry(font.Basic6x8))
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Play the chain, advancing when each segment's scroll completes
//		p := marquee.NewPlayer(head, false)
//		for seg := p.Current(); seg != nil; seg = p.Advance() {
//			dev.ShowSegment(seg, font.Basic6x8)
//			for {
//				done, _ := dev.StepScroll()
//				if done {
//					break
//				}
//				time.Sleep(40 * time.Millisecond)
//			}
//		}
//	}
//
// # Chains and Splicing
//
// Chunk returns the head of a continuation run: the segments of one message,
// linked in order. Runs from different messages, even ones chunked for
// different fonts or buffer sizes, can be threaded together:
//
//	// Play alert after the current segment of news, then resume news.
//	news.InsertNext(alert)
//
// InsertNext treats the inserted run as one logical unit: it walks to the
// run's last segment and reattaches whatever previously followed, so nothing
// downstream is lost. SetNext is the low-level variant that simply
// overwrites the link.
//
// Segments are never freed or owned by the chain; the next link is a
// structural reference only.
//
// # Playback
//
// The package has no awareness of time. When to advance is the host's call,
// typically driven by the display reporting scroll completion. Player keeps
// the bookkeeping honest: Current, Advance, Reset, and optional looping back
// to the chain's head.
package marquee
