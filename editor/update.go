package editor

import "github.com/iw2rmb/querybox/grammar"

// Update applies cmd to s and returns the follow-up the caller must honour.
//
// Edits reset validation to Pending and recompute suggestions before
// returning, so the suggestion list always matches the text being rendered.
func Update(s *State, cmd Command) Intent {
	if s == nil {
		return IntentNone
	}

	before := s.snapshot()
	intent := IntentNone

	switch cmd.Kind {
	case KindInsertChar:
		s.buf.InsertRune(cmd.Char)
		s.completer.Suggest(s.buf.Text())
		s.validation = Pending

	case KindDeleteChar:
		if s.buf.DeleteBackward() {
			s.completer.Suggest(s.buf.Text())
		}
		s.validation = Pending

	case KindAutoComplete:
		s.validation = Pending
		s.autoComplete()

	case KindValidate:
		if grammar.Check(s.buf.Text()) {
			s.validation = Valid
		} else {
			s.validation = Invalid
		}

	case KindExit:
		intent = IntentLeave
	}

	s.notify(before)
	return intent
}

// autoComplete replaces the trailing word with its first vocabulary match.
// The suggestion is recomputed here so a list cached before an earlier edit
// is never used for substitution.
func (s *State) autoComplete() {
	c, ok := s.completer.Suggest(s.buf.Text())
	if !ok {
		return
	}
	s.buf.ReplaceBefore(c.PrefixLen, c.Text)
	s.completer.Suggest(s.buf.Text())
}
