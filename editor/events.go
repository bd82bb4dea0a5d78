package editor

// ChangeEvent reports the editor state after an effective change.
type ChangeEvent struct {
	Version    uint64
	Cursor     int
	Text       string
	Validation Validation

	// Inserted and Deleted hold the text edit made by the command, if any.
	// Both are empty when only validation changed.
	Inserted string
	Deleted  string
}

type stateSnapshot struct {
	version    uint64
	validation Validation
}

func (s *State) snapshot() stateSnapshot {
	return stateSnapshot{version: s.buf.Version(), validation: s.validation}
}

func (s *State) notify(before stateSnapshot) {
	if s.onChange == nil || s.snapshot() == before {
		return
	}
	s.onChange(buildChangeEvent(s, before))
}

func buildChangeEvent(s *State, before stateSnapshot) ChangeEvent {
	ev := ChangeEvent{
		Version:    s.buf.Version(),
		Cursor:     s.buf.Cursor(),
		Text:       s.buf.Text(),
		Validation: s.validation,
	}
	if c, ok := s.buf.LastChange(); ok && c.VersionBefore == before.version {
		ev.Inserted = c.Inserted
		ev.Deleted = c.Deleted
	}
	return ev
}
