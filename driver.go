package srcxml

// parseProlog handles the optional XML declaration and DOCTYPE that may
// precede the document element, per spec.md §4.4's Prolog phase. Both
// scanners leave the view whitespace-trimmed on success, so no extra
// skipWhitespace is needed between them.
func (p *Parser) parseProlog() error {
	p.setView(skipWhitespace(p.view()))
	if isXMLDecl(p.view()) {
		if err := p.scanXMLDeclaration(); err != nil {
			return err
		}
	}
	if isDOCTYPE(p.view()) {
		if err := p.scanDOCTYPE(); err != nil {
			return err
		}
	}
	return nil
}

// parseBody drives the document element and its descendants to completion.
// It keeps at least one BlockSize of lookahead loaded before dispatching on
// the next byte, the same refill discipline original_source's parse() loop
// uses, and returns as soon as depth has returned to zero -- whether via a
// matching end tag or a self-closing document element.
func (p *Parser) parseBody() error {
	for {
		if p.doneReading {
			if p.rb.Len() == 0 {
				return errUnterminated("body")
			}
		} else if p.rb.Len() < BlockSize {
			if err := p.refill(); err != nil {
				return err
			}
		}

		view := p.view()
		if len(view) == 0 {
			return errUnterminated("body")
		}

		switch {
		case view[0] == '&':
			if err := p.scanEntityReference(); err != nil {
				return err
			}
		case view[0] != '<':
			if err := p.scanCharacterData(); err != nil {
				return err
			}
		case isComment(view):
			if err := p.scanComment(); err != nil {
				return err
			}
		case isCDATA(view):
			if err := p.scanCDATA(); err != nil {
				return err
			}
		case len(view) > 1 && view[1] == '?':
			if err := p.scanProcessingInstruction(); err != nil {
				return err
			}
		case len(view) > 1 && view[1] == '/':
			done, err := p.scanEndTag()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		default:
			done, err := p.scanStartTag()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
	return nil
}

// parseEpilog tolerates trailing whitespace and comments after the document
// element, per spec.md §6's resolved Open Question, then rejects anything
// else as TrailingContent.
func (p *Parser) parseEpilog() error {
	p.setView(skipWhitespace(p.view()))
	for isComment(p.view()) {
		if err := p.scanComment(); err != nil {
			return err
		}
		p.setView(skipWhitespace(p.view()))
	}
	if p.rb.Len() != 0 {
		return errTrailingContent()
	}
	return nil
}
