package srcxml

import "bytes"

var cdataEnd = []byte("]]>")

// scanCDATA reads a "<![CDATA[ ... ]]>" section verbatim. If the terminator
// isn't in the currently loaded view, one refill is attempted before giving
// up, matching original_source's parseCDATA: a CDATA section is expected to
// fit within two buffer loads, not an unbounded number.
func (p *Parser) scanCDATA() error {
	p.setView(p.view()[len(cdataPrefix):])

	end := bytes.Index(p.view(), cdataEnd)
	if end == -1 {
		if err := p.refill(); err != nil {
			return err
		}
		end = bytes.Index(p.view(), cdataEnd)
		if end == -1 {
			return errUnterminated("cdata")
		}
	}

	text := p.view()[:end]
	p.advance(end + len(cdataEnd))
	p.handler.CDATA(text)
	return nil
}
