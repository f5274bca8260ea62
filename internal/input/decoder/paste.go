package decoder

import "bytes"

// pasteEnd is the literal byte sequence that terminates bracketed paste.
// It may arrive split across feed boundaries, so the scan must be
// resumable: bytes that could be a marker prefix stay in the buffer.
var pasteEnd = []byte{0x1B, '[', '2', '0', '1', '~'}

// nextPaste runs while the decoder is in ModePaste. Bytes are moved
// verbatim into the paste accumulator (never reinterpreted as escape
// sequences) until the end marker is found, at which point one atomic
// Paste event is emitted with the marker excluded.
func (d *Decoder) nextPaste() (Event, bool) {
	p := d.pending()

	if i := bytes.Index(p, pasteEnd); i >= 0 {
		d.paste = append(d.paste, p[:i]...)
		d.consume(i + len(pasteEnd))
		text := string(d.paste)
		d.paste = d.paste[:0]
		d.mode = ModeNormal
		return pasteEvent(text), true
	}

	// No marker yet. Keep the longest buffer suffix that is a prefix of
	// the marker; everything before it is definitely paste text.
	keep := len(pasteEnd) - 1
	if keep > len(p) {
		keep = len(p)
	}
	for keep > 0 && !bytes.HasPrefix(pasteEnd, p[len(p)-keep:]) {
		keep--
	}
	if move := len(p) - keep; move > 0 {
		d.paste = append(d.paste, p[:move]...)
		d.consume(move)
	}
	return Event{}, false
}
