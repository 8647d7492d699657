package marquee

import "errors"

// Geometry describes the display the chunking algorithm sizes segments for.
// All three values are in display columns; ViewportColumns and BufferColumns
// come from the display driver, GlyphWidth from the selected font.
type Geometry struct {
	// ViewportColumns is the on-screen width.
	ViewportColumns int

	// BufferColumns is the capacity of the scroll-animation buffer, i.e. how
	// many columns can scroll through the viewport in one pass.
	BufferColumns int

	// GlyphWidth is the width of one character cell, spacing included.
	GlyphWidth int
}

// Validate reports whether the geometry can size segments at all.
func (g Geometry) Validate() error {
	if g.GlyphWidth <= 0 {
		return errors.New("marquee: glyph width must be positive")
	}
	if g.ViewportColumns < g.GlyphWidth {
		return errors.New("marquee: viewport narrower than one glyph")
	}
	if g.BufferColumns < g.GlyphWidth {
		return errors.New("marquee: scroll buffer smaller than one glyph")
	}
	return nil
}

// ScreenChars is the number of characters visible on screen at once.
func (g Geometry) ScreenChars() int {
	return g.ViewportColumns / g.GlyphWidth
}

// ScrollChars is the number of new characters the scroll buffer can play
// through before it must be refilled.
func (g Geometry) ScrollChars() int {
	return g.BufferColumns / g.GlyphWidth
}

// SegmentChars is the most characters a single segment may hold: the
// scrollable portion plus the characters still visible as the scroll
// completes.
func (g Geometry) SegmentChars() int {
	return g.ScrollChars() + g.ScreenChars()
}

// Chunk splits message into the minimum number of overlapping segments that
// each fit the display's scroll buffer, links them into a continuation run
// and returns the run's head. A message no longer than g.ScrollChars()
// yields a single segment; an empty message yields a single empty segment.
//
// Every segment after the first repeats the final g.ScreenChars() characters
// of the previous segment, so the visible window at the hand-off instant is
// identical between the end of one segment's scroll and the start of the
// next. Playing the run back to back therefore scrolls the whole message
// with no skip or repeat at the seams.
//
// message is measured in runes: one rune occupies one glyph cell. Chunk
// returns an error for a geometry that fails Validate.
func Chunk(message string, g Geometry) (*Segment, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	runes := []rune(message)
	scroll := g.ScrollChars()
	shown := g.SegmentChars()

	needsContinuation := len(runes) > scroll

	head := &Segment{
		text:            string(runes[:min(len(runes), shown)]),
		hasContinuation: needsContinuation,
	}
	if !needsContinuation {
		return head, nil
	}

	last := head
	for start := scroll; ; start += scroll {
		end := min(len(runes), start+shown)
		if start >= end {
			break
		}
		last = last.SetNext(&Segment{
			text:            string(runes[start:end]),
			hasContinuation: end < len(runes),
			isContinuation:  true,
		})
	}
	return head, nil
}
