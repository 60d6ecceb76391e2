package srcxml

import "bytes"

// scanStartTag reads "<" qname (attribute | namespace)* (">" | "/>"). It
// reports whether the document element has just closed (a self-closing
// root), in which case the body loop should stop and hand off to the
// epilog.
func (p *Parser) scanStartTag() (bool, error) {
	p.setView(p.view()[1:])

	name, rest, err := scanQName(p.view(), "start tag")
	if err != nil {
		return false, err
	}
	p.setView(rest)
	p.handler.StartTag(name.full, name.prefix, name.local)

	p.setView(skipWhitespace(p.view()))
	for len(p.view()) > 0 && isNameStartByte(p.view()[0]) {
		if isNamespace(p.view()) {
			if err := p.scanNamespace(); err != nil {
				return false, err
			}
		} else {
			if err := p.scanAttribute(); err != nil {
				return false, err
			}
		}
		p.setView(skipWhitespace(p.view()))
	}

	view := p.view()
	switch {
	case len(view) > 0 && view[0] == '>':
		p.advance(1)
		p.depth++
		return false, nil
	case len(view) > 1 && view[0] == '/' && view[1] == '>':
		p.advance(2)
		p.handler.EndTag(name.full, name.prefix, name.local)
		return p.depth == 0, nil
	default:
		return false, errSyntax("start tag", "missing > terminator")
	}
}

// scanEndTag reads "</" qname ">". It reports whether depth has returned to
// zero, meaning the document element has closed.
func (p *Parser) scanEndTag() (bool, error) {
	p.setView(p.view()[len("</"):])

	name, rest, err := scanQName(p.view(), "end tag")
	if err != nil {
		return false, err
	}
	p.setView(skipWhitespace(rest))
	if len(p.view()) == 0 || p.view()[0] != '>' {
		return false, errSyntax("end tag", "missing > terminator")
	}
	p.advance(1)
	p.handler.EndTag(name.full, name.prefix, name.local)
	p.depth--
	return p.depth == 0, nil
}

// scanAttribute reads one qname="value" pair from the front of the view.
func (p *Parser) scanAttribute() error {
	name, rest, err := scanQName(p.view(), "attribute")
	if err != nil {
		return err
	}
	rest = skipWhitespace(rest)
	if len(rest) == 0 || rest[0] != '=' {
		return errSyntaxName("attribute", "missing =", string(name.full))
	}
	rest = skipWhitespace(rest[1:])
	if len(rest) == 0 {
		return errSyntaxName("attribute", "missing delimiter", string(name.full))
	}
	delim := rest[0]
	if delim != '"' && delim != '\'' {
		return errSyntaxName("attribute", "invalid delimiter", string(name.full))
	}
	rest = rest[1:]
	end := bytes.IndexByte(rest, delim)
	if end == -1 {
		return errSyntaxName("attribute", "missing closing delimiter", string(name.full))
	}
	value := rest[:end]
	p.setView(rest[end+1:])
	p.handler.Attribute(name.full, name.prefix, name.local, value)
	return nil
}

// scanNamespace reads "xmlns[:prefix]=\"uri\"" from the front of the view.
// prefix is nil for a default namespace declaration.
func (p *Parser) scanNamespace() error {
	view := p.view()[len(xmlnsPrefix):]

	eq := bytes.IndexByte(view, '=')
	if eq == -1 {
		return errSyntax("namespace", "incomplete namespace declaration")
	}

	var prefix []byte
	if len(view) > 0 && view[0] == ':' {
		prefix = view[1:eq]
	}

	rest := skipWhitespace(view[eq+1:])
	if len(rest) == 0 {
		return errSyntax("namespace", "incomplete namespace declaration")
	}
	delim := rest[0]
	if delim != '"' && delim != '\'' {
		return errSyntax("namespace", "incomplete namespace declaration")
	}
	rest = rest[1:]
	end := bytes.IndexByte(rest, delim)
	if end == -1 {
		return errSyntax("namespace", "incomplete namespace declaration")
	}
	uri := rest[:end]
	p.setView(rest[end+1:])
	p.handler.Namespace(prefix, uri)
	return nil
}
