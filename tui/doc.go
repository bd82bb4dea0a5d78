// Package tui is the Bubble Tea front end for the query editor.
//
// It draws three stacked regions each frame: the input box, the suggestion
// box, and a spacer carrying key help. All editing decisions are delegated
// to the focus coordinator.
package tui
