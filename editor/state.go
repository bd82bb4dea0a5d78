package editor

import (
	"github.com/iw2rmb/querybox/buffer"
	"github.com/iw2rmb/querybox/complete"
)

// State owns the query buffer, its suggestions, and its validation flag.
//
// A State is driven by one caller; it is not safe for concurrent use.
type State struct {
	buf        *buffer.Buffer
	completer  *complete.Engine
	validation Validation

	onChange func(ChangeEvent)
}

// New returns a State holding cfg.Text with suggestions already computed.
func New(cfg Config) *State {
	s := &State{
		buf:       buffer.New(cfg.Text),
		completer: complete.NewEngine(cfg.Vocabulary),
		onChange:  cfg.OnChange,
	}
	s.completer.Suggest(s.buf.Text())
	return s
}

func (s *State) Text() string { return s.buf.Text() }

// Cursor returns the cursor offset in characters.
func (s *State) Cursor() int { return s.buf.Cursor() }

// BeforeCursor returns the text left of the cursor, for screen placement.
func (s *State) BeforeCursor() string { return s.buf.BeforeCursor() }

func (s *State) Validation() Validation { return s.validation }

// Suggestions returns the current completion display list.
func (s *State) Suggestions() []string { return s.completer.Suggestions() }
