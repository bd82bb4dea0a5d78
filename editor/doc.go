// Package editor provides the query edit/validation state machine.
//
// Key messages are mapped to Commands by HandleKey; Update applies one
// Command to a State in place. Every command either succeeds or is a
// documented no-op, and none of them can leave the cursor outside the text.
package editor
