package srcxml

import "bytes"

// nameEndBytes are the bytes that terminate an XML name during scanning,
// per spec.md's NAMEEND: '>', space, '/', '"', ':', '=', newline, tab, cr.
const nameEndBytes = "> /\":=\n\t\r"

// whitespaceBytes are the XML production's whitespace characters.
const whitespaceBytes = " \t\n\r"

// nameStartMask is a 128-bit mask (as two uint64 halves) over ASCII bytes
// legal as the first byte of an XML name: letters, underscore, colon.
// Non-ASCII bytes are never name-start bytes (acceptable for srcML input).
var nameStartMask = buildNameStartMask()

func buildNameStartMask() [2]uint64 {
	var mask [2]uint64
	set := func(b byte) { mask[b/64] |= 1 << (b % 64) }
	for b := byte('a'); b <= 'z'; b++ {
		set(b)
	}
	for b := byte('A'); b <= 'Z'; b++ {
		set(b)
	}
	set('_')
	set(':')
	return mask
}

// isNameStartByte reports whether b may legally open an XML name.
func isNameStartByte(b byte) bool {
	if b >= 128 {
		return false
	}
	return nameStartMask[b/64]&(1<<(b%64)) != 0
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipWhitespace returns view with any leading whitespace bytes removed.
func skipWhitespace(view []byte) []byte {
	i := 0
	for i < len(view) && isSpace(view[i]) {
		i++
	}
	return view[i:]
}

// qname is a qualified name split into its prefix and local parts; both are
// borrowed views into the RefillBuffer, valid only until the next refill.
type qname struct {
	full   []byte
	prefix []byte
	local  []byte
}

// scanQName reads a qname from the start of view up to the first NAMEEND
// byte, honoring the prefix:local split per spec.md §4.3. It returns the
// parsed name and the remaining view starting at the NAMEEND byte.
func scanQName(view []byte, production string) (qname, []byte, error) {
	if len(view) > 0 && view[0] == ':' {
		return qname{}, nil, errInvalidName(production)
	}
	end := bytes.IndexAny(view, nameEndBytes)
	if end == -1 {
		return qname{}, nil, errUnterminated(production)
	}
	colon := -1
	if end < len(view) && view[end] == ':' {
		colon = end
		rest := bytes.IndexAny(view[end+1:], nameEndBytes)
		if rest == -1 {
			return qname{}, nil, errUnterminated(production)
		}
		end = end + 1 + rest
	}
	full := view[:end]
	if len(full) == 0 {
		return qname{}, nil, errInvalidName(production)
	}
	n := qname{full: full}
	if colon >= 0 {
		n.prefix = view[:colon]
		n.local = view[colon+1 : end]
	} else {
		n.local = full
	}
	return n, view[end:], nil
}
