package srcxml

// Handler is the capability set the ParseDriver dispatches XML events to.
// Every parameter is a borrowed byte slice: it is a view into the Parser's
// RefillBuffer and is only valid for the duration of the call. A Handler
// that needs to retain a value past its method returning must copy it.
//
// Embed BaseHandler to get no-op defaults for events you don't care about,
// the same way spec.md §4.5 describes a "polymorphic capability set ...
// default-implementable as a no-op".
type Handler interface {
	// StartDocument is called once, before the prolog is parsed.
	StartDocument()
	// XMLDeclaration is called when the document has a <?xml ... ?>
	// declaration. encoding and standalone are only meaningful when
	// hasEncoding/hasStandalone is true.
	XMLDeclaration(version, encoding, standalone []byte, hasEncoding, hasStandalone bool)
	// StartTag is called for every opening tag, including the opening half
	// of a self-closing element.
	StartTag(qname, prefix, localName []byte)
	// EndTag is called for every closing tag, including the synthesized
	// close of a self-closing element.
	EndTag(qname, prefix, localName []byte)
	// Character is called for runs of character data and for each
	// recognized entity reference, decoded to its single-byte value.
	Character(text []byte)
	// Attribute is called once per attribute, in lexical order, between a
	// StartTag and the next event.
	Attribute(qname, prefix, localName, value []byte)
	// Namespace is called for xmlns / xmlns:prefix declarations.
	Namespace(prefix, uri []byte)
	// Comment is called with a comment's inner text (no <!-- -->).
	Comment(text []byte)
	// CDATA is called with a CDATA section's inner text (no markers).
	CDATA(text []byte)
	// ProcessingInstruction is called with a PI's target and data.
	ProcessingInstruction(target, data []byte)
	// EndDocument is called once, after the epilog is parsed.
	EndDocument()
}

// BaseHandler implements Handler with no-op methods. Embed it anonymously
// to implement only the events you care about.
type BaseHandler struct{}

func (BaseHandler) StartDocument() {}
func (BaseHandler) XMLDeclaration(version, encoding, standalone []byte, hasEncoding, hasStandalone bool) {
}
func (BaseHandler) StartTag(qname, prefix, localName []byte)                     {}
func (BaseHandler) EndTag(qname, prefix, localName []byte)                       {}
func (BaseHandler) Character(text []byte)                                        {}
func (BaseHandler) Attribute(qname, prefix, localName, value []byte)             {}
func (BaseHandler) Namespace(prefix, uri []byte)                                 {}
func (BaseHandler) Comment(text []byte)                                          {}
func (BaseHandler) CDATA(text []byte)                                            {}
func (BaseHandler) ProcessingInstruction(target, data []byte)                    {}
func (BaseHandler) EndDocument()                                                 {}

var _ Handler = BaseHandler{}
