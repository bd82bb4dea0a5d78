package buffer

// Buffer is the pure query state: text and cursor.
type Buffer struct {
	text    []rune
	cursor  int
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the cursor at the end.
func New(text string) *Buffer {
	rs := []rune(text)
	return &Buffer{
		text:   rs,
		cursor: len(rs),
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Cursor returns the cursor offset in characters.
func (b *Buffer) Cursor() int { return b.cursor }

// Version increments on every effective edit.
func (b *Buffer) Version() uint64 { return b.version }

// BeforeCursor returns the text left of the cursor.
func (b *Buffer) BeforeCursor() string { return string(b.text[:b.cursor]) }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
