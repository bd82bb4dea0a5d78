package buffer

// Change describes the most recent effective text mutation.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int

	// At is the character offset where the edit happened.
	At       int
	Inserted string
	Deleted  string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) commit(c Change) {
	c.VersionAfter = b.version
	c.CursorAfter = b.cursor
	b.lastChange = c
	b.hasLastChange = true
}
