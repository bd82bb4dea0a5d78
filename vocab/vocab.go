// Package vocab holds the fixed keyword set used for completion.
package vocab

import (
	"iter"
	"slices"
	"strings"
)

// DefaultTokens is the built-in keyword set, in declaration order.
var DefaultTokens = []string{"SELECT", "FROM", "WHERE", "AGGREGATORS"}

// Vocabulary is an ordered, read-only token list.
//
// The zero value is an empty vocabulary.
type Vocabulary struct {
	tokens []string
}

// New builds a vocabulary from tokens, keeping declaration order. Tokens are
// trimmed; empty tokens and repeats of an earlier token are dropped.
func New(tokens ...string) Vocabulary {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return Vocabulary{tokens: out}
}

// Default returns the built-in vocabulary.
func Default() Vocabulary { return New(DefaultTokens...) }

func (v Vocabulary) Len() int { return len(v.tokens) }

// All iterates tokens in declaration order.
func (v Vocabulary) All() iter.Seq[string] { return slices.Values(v.tokens) }
