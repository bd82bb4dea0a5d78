// Package grapheme measures query text for on-screen placement.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of text.
//
// Clusters that go-runewidth reports as zero-width (emoji sequences, some
// combining forms) fall back to the uniseg width.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += clusterWidth(c)
	}
	return w
}

// Truncate cuts text to at most width cells, appending tail when it had to cut.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, tail)
}

func clusterWidth(c string) int {
	w := runewidth.StringWidth(c)
	if w <= 0 {
		if fallback := uniseg.StringWidth(c); fallback > w {
			w = fallback
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}
