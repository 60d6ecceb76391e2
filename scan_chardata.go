package srcxml

import "bytes"

var (
	ltBytes   = []byte{'<'}
	gtBytes   = []byte{'>'}
	ampBytes  = []byte{'&'}
	aposBytes = []byte{'\''}
	quotBytes = []byte{'"'}
)

// scanCharacterData reads a run of character data up to the next '<' or '&',
// per spec.md §4.3. The emitted slice may be empty only when view already
// starts with '<' or '&', which callers never do (those are dispatched to
// their own scanners before this one is reached).
func (p *Parser) scanCharacterData() error {
	view := p.view()
	end := bytes.IndexAny(view, "<&")
	if end == -1 {
		end = len(view)
	}
	text := view[:end]
	p.advance(end)
	p.handler.Character(text)
	return nil
}

// scanEntityReference recognizes the five XML built-in character entity
// references and decodes each to its single-byte value. Anything else
// starting with '&' -- an unrecognized or malformed reference -- is passed
// through as a literal '&' character, per spec.md's resolved Open Question:
// this parser does not validate entity references against a DTD.
func (p *Parser) scanEntityReference() error {
	view := p.view()
	var value []byte
	var consumed int
	switch {
	case bytes.HasPrefix(view, []byte("&lt;")):
		value, consumed = ltBytes, len("&lt;")
	case bytes.HasPrefix(view, []byte("&gt;")):
		value, consumed = gtBytes, len("&gt;")
	case bytes.HasPrefix(view, []byte("&amp;")):
		value, consumed = ampBytes, len("&amp;")
	case bytes.HasPrefix(view, []byte("&apos;")):
		value, consumed = aposBytes, len("&apos;")
	case bytes.HasPrefix(view, []byte("&quot;")):
		value, consumed = quotBytes, len("&quot;")
	default:
		value, consumed = ampBytes, 1
	}
	p.advance(consumed)
	p.handler.Character(value)
	return nil
}
