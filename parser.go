package srcxml

import "io"

// Parser binds an input source and a Handler and drives the XML grammar to
// completion. It is the ParserFacade of spec.md §4.6: a single entry point,
// Parse, plus a byte counter usable once Parse returns.
//
// A Parser is not safe for concurrent use, and must not be reused across
// more than one call to Parse. Multiple independent Parsers may run in
// parallel on disjoint inputs; they share no mutable state.
type Parser struct {
	r       io.Reader
	handler Handler
	rb      *RefillBuffer

	totalBytes  int64
	depth       int
	doneReading bool
}

// New creates a Parser that reads from r and dispatches events to h.
func New(r io.Reader, h Handler) *Parser {
	return &Parser{
		r:       r,
		handler: h,
		rb:      NewRefillBuffer(),
	}
}

// TotalBytes reports the cumulative number of bytes read from the input
// source. It is meaningful once Parse has returned.
func (p *Parser) TotalBytes() int64 { return p.totalBytes }

// Parse drives the parser to completion: prolog, body, epilog. It returns
// the first fatal ParseError encountered, or nil on a well-formed document.
func (p *Parser) Parse() error {
	if err := p.begin(); err != nil {
		return err
	}
	p.handler.StartDocument()
	if err := p.parseProlog(); err != nil {
		return err
	}
	if err := p.parseBody(); err != nil {
		return err
	}
	if err := p.parseEpilog(); err != nil {
		return err
	}
	p.handler.EndDocument()
	return nil
}

func (p *Parser) begin() error {
	n, err := p.rb.Refill(p.r)
	if err != nil {
		return err
	}
	p.totalBytes += int64(n)
	if n == 0 {
		return errEmptyInput()
	}
	return nil
}

func (p *Parser) refill() error {
	n, err := p.rb.Refill(p.r)
	if err != nil {
		return err
	}
	p.totalBytes += int64(n)
	if n == 0 {
		p.doneReading = true
	}
	return nil
}

func (p *Parser) view() []byte    { return p.rb.View() }
func (p *Parser) advance(n int)   { p.rb.Advance(n) }
func (p *Parser) setView(v []byte) { p.rb.SetView(v) }
