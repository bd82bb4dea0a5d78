package buffer

// InsertRune inserts r at the cursor and advances the cursor by one.
func (b *Buffer) InsertRune(r rune) {
	b.splice(0, []rune{r})
}

// DeleteBackward removes the character before the cursor. It does nothing at
// offset 0 and reports whether a character was removed.
func (b *Buffer) DeleteBackward() bool {
	return b.splice(1, nil) == 1
}

// ReplaceBefore removes up to n characters immediately before the cursor and
// inserts s in their place, as one change. The cursor ends after s. The removal never reaches past
// offset 0; the number of characters removed is returned.
func (b *Buffer) ReplaceBefore(n int, s string) int {
	return b.splice(n, []rune(s))
}

func (b *Buffer) splice(n int, rs []rune) int {
	n = clampInt(n, 0, b.cursor)
	if n == 0 && len(rs) == 0 {
		return 0
	}

	start := b.cursor - n
	change := Change{
		VersionBefore: b.version,
		CursorBefore:  b.cursor,
		At:            start,
		Deleted:       string(b.text[start:b.cursor]),
		Inserted:      string(rs),
	}

	next := make([]rune, 0, len(b.text)-n+len(rs))
	next = append(next, b.text[:start]...)
	next = append(next, rs...)
	next = append(next, b.text[b.cursor:]...)

	b.text = next
	b.cursor = start + len(rs)
	b.version++
	b.commit(change)
	return n
}
