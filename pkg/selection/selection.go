package selection

// Range is a pair of zero-based rune offsets into the current text.
// Start <= End always holds for a Range produced by this package; a
// zero-width range is a caret.
type Range struct {
	Start int
	End   int
}

// NewRange builds a normalized range from two offsets in any order
func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Caret returns a zero-width range at pos
func Caret(pos int) Range {
	return Range{Start: pos, End: pos}
}

// IsEmpty reports whether the range selects no text
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the number of runes covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Clamp normalizes r and bounds both offsets to [0, n]
func Clamp(r Range, n int) Range {
	if n < 0 {
		n = 0
	}
	r = NewRange(r.Start, r.End)
	r.Start = clampInt(r.Start, 0, n)
	r.End = clampInt(r.End, 0, n)
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Tracker records the most recent selection observed from the editing surface
type Tracker struct {
	current Range
}

// NewTracker creates a tracker positioned at (0,0)
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update records r, clamped against a text of textLen runes.
// Out-of-range input is never an error.
func (t *Tracker) Update(r Range, textLen int) {
	t.current = Clamp(r, textLen)
}

// Current returns the last recorded selection
func (t *Tracker) Current() Range {
	return t.current
}

// Reset moves the selection back to a caret at the start of the buffer
func (t *Tracker) Reset() {
	t.current = Range{}
}
