package srcxml

import "bytes"

// scanComment reads a "<!-- ... -->" section. As with CDATA, a single
// refill is attempted if the terminator isn't already in view before this
// is reported Unterminated, per original_source's parseComment.
func (p *Parser) scanComment() error {
	p.setView(p.view()[len(commentPrefix):])

	end := bytes.Index(p.view(), commentCloseBytes)
	if end == -1 {
		if err := p.refill(); err != nil {
			return err
		}
		end = bytes.Index(p.view(), commentCloseBytes)
		if end == -1 {
			return errUnterminated("comment")
		}
	}

	text := p.view()[:end]
	p.advance(end + len(commentCloseBytes))
	p.setView(skipWhitespace(p.view()))
	p.handler.Comment(text)
	return nil
}
