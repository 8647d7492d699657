package marquee

// Player tracks the playback position within a chain. It has no notion of
// time: the surrounding scheduler calls Advance whenever the display reports
// that the current segment finished scrolling.
type Player struct {
	head    *Segment
	current *Segment
	loop    bool
}

// NewPlayer returns a player positioned at head. When loop is true, Advance
// re-enters head after the chain's last segment instead of stopping.
func NewPlayer(head *Segment, loop bool) *Player {
	return &Player{head: head, current: head, loop: loop}
}

// Current returns the segment at the playback position, or nil once a
// non-looping chain has finished.
func (p *Player) Current() *Segment {
	return p.current
}

// Advance moves past the current segment and returns the new position. At
// the end of the chain it returns nil, or the chain's head again when
// looping. Advancing a finished player keeps returning nil.
func (p *Player) Advance() *Segment {
	if p.current == nil {
		return nil
	}
	next := p.current.Next()
	if next == nil && p.loop {
		next = p.head
	}
	p.current = next
	return next
}

// Reset moves the playback position back to the chain's head.
func (p *Player) Reset() {
	p.current = p.head
}
