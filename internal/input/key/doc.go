// Package key provides keyboard event types for the input decoder.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Shift, Ctrl, Alt, Super, Hyper, Meta)
//   - Event: A single key press with modifiers and a repeat flag
//
// Special keys occupy an enum namespace that is disjoint from Unicode
// codepoints: a character key is always KeyRune with the codepoint in
// Event.Rune, so function and navigation keys can never collide with
// printable input.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// Specifications are used by configuration values such as the quit key and
// by event filters; they are parsed with Parse and formatted with FormatSpec.
package key
