package complete

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/querybox/vocab"
)

func TestTrailingWord(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "", want: ""},
		{text: "SEL", want: "SEL"},
		{text: "SELECT * FR", want: "FR"},
		{text: "SELECT ", want: ""},
		{text: "a  b", want: "b"},
		{text: "SELECT\tFR", want: "SELECT\tFR"},
	}
	for _, tc := range cases {
		if got := TrailingWord(tc.text); got != tc.want {
			t.Fatalf("TrailingWord(%q)=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestMatch_Substring(t *testing.T) {
	v := vocab.Default()
	cases := []struct {
		word string
		want []string
	}{
		{word: "HE", want: []string{"WHERE"}},
		{word: "LE", want: []string{"SELECT"}},
		{word: "E", want: []string{"SELECT", "WHERE", "AGGREGATORS"}},
		{word: "R", want: []string{"FROM", "WHERE", "AGGREGATORS"}},
		{word: "sel", want: nil},
		{word: "XYZ", want: nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, Match(v, tc.word)); diff != "" {
			t.Fatalf("Match(%q) (-want +got):\n%s", tc.word, diff)
		}
	}
}

func TestEngine_SuggestReturnsFirstMatch(t *testing.T) {
	e := NewEngine(vocab.Default())

	c, ok := e.Suggest("SELECT * FROM t WH")
	if !ok {
		t.Fatalf("expected a completion")
	}
	if diff := cmp.Diff(Completion{PrefixLen: 2, Text: "WHERE"}, c); diff != "" {
		t.Fatalf("completion (-want +got):\n%s", diff)
	}

	c, ok = e.Suggest("E")
	if !ok || c.Text != "SELECT" {
		t.Fatalf("first match by vocabulary order: got (%+v,%v), want SELECT", c, ok)
	}
	if diff := cmp.Diff([]string{"SELECT", "WHERE", "AGGREGATORS"}, e.Suggestions()); diff != "" {
		t.Fatalf("suggestions (-want +got):\n%s", diff)
	}
}

func TestEngine_NoMatchKeepsList(t *testing.T) {
	e := NewEngine(vocab.Default())
	e.Suggest("SEL")

	if _, ok := e.Suggest("SELQ"); ok {
		t.Fatalf("expected no completion")
	}
	if diff := cmp.Diff([]string{"SELECT"}, e.Suggestions()); diff != "" {
		t.Fatalf("list must survive a miss (-want +got):\n%s", diff)
	}
}

func TestEngine_EmptyWordClears(t *testing.T) {
	e := NewEngine(vocab.Default())
	e.Suggest("SEL")

	if _, ok := e.Suggest("SELECT "); ok {
		t.Fatalf("expected no completion for empty trailing word")
	}
	if got := e.Suggestions(); len(got) != 0 {
		t.Fatalf("suggestions=%v, want empty", got)
	}
}

func TestEngine_PrefixLenCountsCharacters(t *testing.T) {
	e := NewEngine(vocab.New("CAFÉS"))
	c, ok := e.Suggest("x CAFÉ")
	if !ok {
		t.Fatalf("expected a completion")
	}
	if got, want := c.PrefixLen, 4; got != want {
		t.Fatalf("prefix len=%d, want %d", got, want)
	}
}

func TestEngine_SuggestionsReturnsCopy(t *testing.T) {
	e := NewEngine(vocab.Default())
	e.Suggest("FR")
	got := e.Suggestions()
	got[0] = "MUTATED"
	if diff := cmp.Diff([]string{"FROM"}, e.Suggestions()); diff != "" {
		t.Fatalf("suggestions mutated through copy (-want +got):\n%s", diff)
	}
}
