// Package decoder converts a raw terminal byte stream into discrete input
// events.
//
// A Decoder owns all not-yet-consumed bytes across calls. Feed appends a
// chunk; Next returns the next complete event, or reports that more bytes
// are needed. Bytes are only removed from the buffer once a complete event
// (or an explicit Unknown span) has been formed, so splitting the stream at
// arbitrary points never changes the decoded event sequence.
//
// The decoder recognizes plain and UTF-8 keys, control characters,
// Alt-prefixed keys, CSI and SS3 key sequences, SGR and legacy X10 mouse
// reports, focus notifications, resize and cursor-position reports, and
// bracketed paste. Malformed sequences are consumed and surfaced as Unknown
// events; decoding never stalls and never drops bytes silently.
//
// Decoding is a pure function of (buffer, mode): the decoder performs no
// I/O and keeps no timers. It is not safe for concurrent use; all calls
// must come from a single goroutine.
package decoder
