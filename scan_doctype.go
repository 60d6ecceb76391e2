package srcxml

import "bytes"

var (
	commentOpenBytes  = []byte("<!--")
	commentCloseBytes = []byte("-->")
)

// scanDOCTYPE skips an entire "<!DOCTYPE ... >" declaration opaquely,
// without interpreting its internal subset. It tracks angle-bracket depth
// so that a nested internal subset ("<!DOCTYPE a [ <!ELEMENT ...> ]>") is
// skipped correctly, and ignores brackets and comment delimiters that occur
// inside quoted literals or comments, per original_source's parseDOCTYPE.
func (p *Parser) scanDOCTYPE() error {
	p.setView(p.view()[len("<!DOCTYPE"):])

	depth := 1
	inSingle, inDouble, inComment := false, false, false
	pos := 0

	for {
		view := p.view()
		for pos < len(view) {
			if inComment {
				if view[pos] == '-' && bytes.HasPrefix(view[pos:], commentCloseBytes) {
					inComment = false
					pos += 3
					continue
				}
				pos++
				continue
			}
			if view[pos] == '<' && !inSingle && !inDouble && bytes.HasPrefix(view[pos:], commentOpenBytes) {
				inComment = true
				pos += 4
				continue
			}
			switch {
			case view[pos] == '<' && !inSingle && !inDouble:
				depth++
			case view[pos] == '>' && !inSingle && !inDouble:
				depth--
			case view[pos] == '\'' && !inDouble:
				inSingle = !inSingle
			case view[pos] == '"' && !inSingle:
				inDouble = !inDouble
			}
			if depth == 0 {
				break
			}
			pos++
		}
		if depth == 0 {
			break
		}
		if p.doneReading {
			return errUnterminated("doctype")
		}
		if err := p.refill(); err != nil {
			return err
		}
	}

	rest := skipWhitespace(p.view()[pos+1:])
	p.setView(rest)
	return nil
}
