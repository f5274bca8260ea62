// Package terminal provides the byte-source collaborator for the input
// decoder: raw-mode setup and restore, the read loop that feeds the
// decoder, and size-change watching.
//
// The decoder itself performs no I/O and keeps no timers; everything
// time- or OS-dependent lives here. All decoder calls are made from the
// Run goroutine, preserving the decoder's single-writer discipline. The
// read timeout resolves the one ambiguity bytes alone cannot: a lone ESC
// that is a keypress rather than the start of a sequence.
package terminal
