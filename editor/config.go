package editor

import "github.com/iw2rmb/querybox/vocab"

// Config configures a State.
type Config struct {
	// Initial query text; the cursor starts at its end.
	Text string

	// Vocabulary offered for completion. The zero value offers nothing.
	Vocabulary vocab.Vocabulary

	// OnChange, if set, is called after each command that changed the text,
	// the cursor, or the validation state.
	OnChange func(ChangeEvent)
}
