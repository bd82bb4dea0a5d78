// Package buffer implements the single-line query text model.
//
// The cursor is a 0-based offset counted in characters (runes), never bytes,
// and always lies between 0 and the text length.
package buffer
