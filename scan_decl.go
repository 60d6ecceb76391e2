package srcxml

import "bytes"

var piEnd = []byte("?>")

// scanXMLDeclaration parses "<?xml" version=".." [encoding=".."] [standalone=".."] "?>"
// per spec.md §4.3: version is mandatory and first; encoding and standalone
// are optional but, when both present, must appear in that order. The
// reference implementation (original_source's parseVersion/parseEncoding/
// parseStandalone) rejects standalone before encoding; this mirrors that.
func (p *Parser) scanXMLDeclaration() error {
	p.setView(skipWhitespace(p.view()[len("<?xml"):]))

	name, version, rest, err := scanPseudoAttr(p.view(), "xml declaration")
	if err != nil {
		return err
	}
	if string(name) != "version" {
		return errSyntax("xml declaration", "version must be the first attribute")
	}
	p.setView(skipWhitespace(rest))

	var encoding, standalone []byte
	var hasEncoding, hasStandalone bool

	if !bytes.HasPrefix(p.view(), piEnd) {
		name, value, rest, err := scanPseudoAttr(p.view(), "xml declaration")
		if err != nil {
			return err
		}
		p.setView(skipWhitespace(rest))
		switch string(name) {
		case "encoding":
			encoding, hasEncoding = value, true
		case "standalone":
			standalone, hasStandalone = value, true
		default:
			return errSyntaxName("xml declaration", "unrecognized attribute", string(name))
		}
	}

	if hasEncoding && !bytes.HasPrefix(p.view(), piEnd) {
		name, value, rest, err := scanPseudoAttr(p.view(), "xml declaration")
		if err != nil {
			return err
		}
		p.setView(skipWhitespace(rest))
		if string(name) != "standalone" {
			return errSyntaxName("xml declaration", "unrecognized attribute", string(name))
		}
		standalone, hasStandalone = value, true
	}

	if !bytes.HasPrefix(p.view(), piEnd) {
		return errSyntax("xml declaration", "missing ?> terminator")
	}
	p.setView(skipWhitespace(p.view()[len(piEnd):]))

	p.handler.XMLDeclaration(version, encoding, standalone, hasEncoding, hasStandalone)
	return nil
}

// scanPseudoAttr reads one name="value" (or name='value') pair from the
// front of view, the pseudo-attribute grammar used only by the XML
// declaration. It returns the name, the unquoted value, and the remainder
// of view starting just past the closing delimiter.
func scanPseudoAttr(view []byte, production string) (name, value, rest []byte, err error) {
	end := bytes.IndexAny(view, "= ")
	if end == -1 {
		return nil, nil, nil, errUnterminated(production)
	}
	name = view[:end]
	rest = skipWhitespace(view[end:])
	if len(rest) == 0 || rest[0] != '=' {
		return nil, nil, nil, errSyntaxName(production, "missing =", string(name))
	}
	rest = skipWhitespace(rest[1:])
	if len(rest) == 0 {
		return nil, nil, nil, errSyntaxName(production, "missing delimiter", string(name))
	}
	delim := rest[0]
	if delim != '"' && delim != '\'' {
		return nil, nil, nil, errSyntaxName(production, "invalid delimiter", string(name))
	}
	rest = rest[1:]
	valueEnd := bytes.IndexByte(rest, delim)
	if valueEnd == -1 {
		return nil, nil, nil, errSyntaxName(production, "missing closing delimiter", string(name))
	}
	value = rest[:valueEnd]
	rest = rest[valueEnd+1:]
	return name, value, rest, nil
}
