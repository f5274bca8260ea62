// Package mouse provides mouse event types and wire-report decoding.
//
// Terminals report mouse activity in two encodings that share one bit
// layout for the button byte: the legacy X10 encoding (three raw bytes
// biased by +32) and the modern SGR encoding (decimal parameters,
// release signalled by the final byte). DecodeReport implements that
// shared layout once; the X10 and SGR entry points differ only in how
// they extract the integers and detect release.
package mouse
