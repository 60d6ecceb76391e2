package srcxml

import "bytes"

// scanProcessingInstruction reads a "<?target data?>" processing instruction.
// data is trimmed of leading and trailing whitespace, matching how
// encoding/xml's ProcInst.Inst is conventionally consumed downstream, rather
// than original_source's raw substring which keeps the separating space.
func (p *Parser) scanProcessingInstruction() error {
	p.setView(p.view()[len("<?"):])
	view := p.view()

	nameEnd := bytes.IndexAny(view, nameEndBytes)
	if nameEnd == -1 {
		return errUnterminated("processing instruction")
	}
	target := view[:nameEnd]

	end := bytes.Index(view[nameEnd:], piEnd)
	if end == -1 {
		return errSyntax("processing instruction", "missing ?> terminator")
	}
	data := bytes.TrimSpace(view[nameEnd : nameEnd+end])

	p.advance(nameEnd + end + len(piEnd))
	p.handler.ProcessingInstruction(target, data)
	return nil
}
