package marquee

// Segment is one displayable chunk of a message, sized so a display's
// scroll-animation buffer can play it in a single pass. Segments produced
// from one message by Chunk are linked into a continuation run; independent
// runs can be threaded together with InsertNext.
//
// The next link is structural only. A chain never owns the segments it
// reaches; whoever holds a reference to a segment controls its lifetime.
type Segment struct {
	text            string
	hasContinuation bool
	isContinuation  bool
	next            *Segment
}

// New creates a standalone segment showing text. Use it for messages short
// enough to play in one pass; longer messages go through Chunk.
func New(text string) *Segment {
	return &Segment{text: text}
}

// Text returns the substring of the original message this segment shows.
func (s *Segment) Text() string {
	return s.text
}

// HasContinuation reports whether another segment of the same original
// message must play immediately after this one.
func (s *Segment) HasContinuation() bool {
	return s.hasContinuation
}

// IsContinuation reports whether this segment was produced as a follow-up to
// an earlier segment of the same message. It is fixed at construction.
func (s *Segment) IsContinuation() bool {
	return s.isContinuation
}

// HasNext reports whether a segment is linked after this one.
func (s *Segment) HasNext() bool {
	return s.next != nil
}

// Next returns the segment that plays after this one, or nil at the end of
// the chain. The returned segment may belong to a different original message.
func (s *Segment) Next() *Segment {
	return s.next
}

// SetNext links next to play after s, replacing any previous link, and
// returns next. The previously linked segment is detached silently; callers
// that still need it must retain their own reference. next may be nil to
// terminate the chain at s.
func (s *Segment) SetNext(next *Segment) *Segment {
	s.next = next
	return next
}

// InsertNext splices the continuation run starting at head between s and
// whatever currently follows s, and returns head. The run is everything
// reachable from head while HasContinuation holds, so a whole chunked
// message is threaded in as one unit and the rest of s's chain stays
// reachable after it.
//
// The two chains may come from displays with different fonts or buffer
// sizes; InsertNext does not care.
//
// The inserted run must be fully linked and acyclic: every segment of it
// that reports HasContinuation must have its next link set. InsertNext does
// not guard against a malformed run and will not terminate on a cyclic one.
func (s *Segment) InsertNext(head *Segment) *Segment {
	last := head
	for last.HasContinuation() {
		last = last.Next()
	}
	last.SetNext(s.next)
	return s.SetNext(head)
}
