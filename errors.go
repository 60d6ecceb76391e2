package srcxml

import "fmt"

// Kind categorizes a ParseError the way spec-driven callers need to branch
// on failure mode without parsing the message text.
type Kind int

const (
	// InputIO indicates a read from the input source failed.
	InputIO Kind = iota
	// EmptyInput indicates no bytes could be read before parsing began.
	EmptyInput
	// InvalidSyntax indicates a grammar production failed to match.
	InvalidSyntax
	// InvalidName indicates a qname was empty or began with ':'.
	InvalidName
	// Unterminated indicates the input ended before a construct's terminator
	// was found; for a comment or CDATA section, even after a refill was
	// attempted.
	Unterminated
	// TrailingContent indicates non-whitespace, non-comment bytes followed
	// the document element.
	TrailingContent
)

func (k Kind) String() string {
	switch k {
	case InputIO:
		return "input I/O error"
	case EmptyInput:
		return "empty input"
	case InvalidSyntax:
		return "invalid syntax"
	case InvalidName:
		return "invalid name"
	case Unterminated:
		return "unterminated"
	case TrailingContent:
		return "trailing content"
	default:
		return "unknown"
	}
}

// ParseError is a fatal parse failure. It is never recovered from internally;
// Parser.Parse returns it to the caller instead of aborting the process.
type ParseError struct {
	Kind       Kind
	Production string // the scanner/production that raised the error
	Name       string // offending tag/attribute name, when known
	Message    string
	Err        error // wrapped I/O error, when Kind == InputIO
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Name != "" {
		return fmt.Sprintf("parser error : %s: %s %q", e.Production, msg, e.Name)
	}
	if e.Production != "" {
		return fmt.Sprintf("parser error : %s: %s", e.Production, msg)
	}
	return fmt.Sprintf("parser error : %s", msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func errSyntax(production, message string) *ParseError {
	return &ParseError{Kind: InvalidSyntax, Production: production, Message: message}
}

func errSyntaxName(production, message, name string) *ParseError {
	return &ParseError{Kind: InvalidSyntax, Production: production, Message: message, Name: name}
}

func errInvalidName(production string) *ParseError {
	return &ParseError{Kind: InvalidName, Production: production, Message: "empty or invalid element name"}
}

func errUnterminated(production string) *ParseError {
	return &ParseError{Kind: Unterminated, Production: production, Message: "missing terminator"}
}

func errIO(err error) *ParseError {
	return &ParseError{Kind: InputIO, Production: "refill", Message: "read error", Err: err}
}

func errEmptyInput() *ParseError {
	return &ParseError{Kind: EmptyInput, Message: "no bytes available"}
}

func errTrailingContent() *ParseError {
	return &ParseError{Kind: TrailingContent, Production: "epilog", Message: "extra content at end of document"}
}
