// Package complete proposes vocabulary completions for the word being typed.
//
// Matching is deliberately loose: an entry matches when it contains the
// trailing word anywhere, so "LE" offers SELECT. Results keep vocabulary order.
package complete

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/querybox/vocab"
)

// Completion is the preferred substitution for the trailing word.
type Completion struct {
	// PrefixLen is the trailing word length in characters; callers erase this
	// many characters before inserting Text.
	PrefixLen int
	Text      string
}

// TrailingWord returns the text after the last space in text.
//
// The cursor position is not consulted: the trailing word of the whole
// buffer is always the one being completed.
func TrailingWord(text string) string {
	if i := strings.LastIndexByte(text, ' '); i >= 0 {
		return text[i+1:]
	}
	return text
}

// Match returns every entry of v that contains word, in vocabulary order.
func Match(v vocab.Vocabulary, word string) []string {
	var out []string
	for tok := range v.All() {
		if strings.Contains(tok, word) {
			out = append(out, tok)
		}
	}
	return out
}

// Engine tracks the displayed suggestion list for one editor.
type Engine struct {
	vocab       vocab.Vocabulary
	suggestions []string
}

// NewEngine returns an engine drawing from v.
func NewEngine(v vocab.Vocabulary) *Engine {
	return &Engine{vocab: v}
}

// Suggest recomputes suggestions for text and returns the preferred completion.
//
// An empty trailing word clears the list. When nothing matches the list is
// left as it was and ok is false.
func (e *Engine) Suggest(text string) (c Completion, ok bool) {
	word := TrailingWord(text)
	if word == "" {
		e.suggestions = nil
		return Completion{}, false
	}

	matches := Match(e.vocab, word)
	if len(matches) == 0 {
		return Completion{}, false
	}

	e.suggestions = matches
	return Completion{
		PrefixLen: utf8.RuneCountInString(word),
		Text:      matches[0],
	}, true
}

// Suggestions returns a copy of the current display list.
func (e *Engine) Suggestions() []string { return slices.Clone(e.suggestions) }
