// Package replay records decoded input events as JSON Lines and reads
// them back. A transcript line carries the event kind plus the fields of
// that kind; key events use the same specification strings the config
// quit key uses, so transcripts stay greppable.
//
// Ctrl-letter keys canonicalize to the lowercase spec form on write, the
// same equivalence Event.Equal applies.
package replay
