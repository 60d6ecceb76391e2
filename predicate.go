package srcxml

import "bytes"

// Predicates are pure, constant-time functions over the first few bytes of
// the unconsumed view. Each tolerates a view shorter than the longest prefix
// it checks, returning false, so callers can probe safely right after a
// refill.

var (
	xmlDeclPrefix = []byte("<?xml ")
	doctypePrefix = []byte("<!DOCTYPE ")
	cdataPrefix   = []byte("<![CDATA[")
	commentPrefix = []byte("<!--")
	xmlnsPrefix   = []byte("xmlns")
)

// isXMLDecl reports whether view starts with "<?xml " exactly.
func isXMLDecl(view []byte) bool {
	return bytes.HasPrefix(view, xmlDeclPrefix)
}

// isDOCTYPE reports whether view starts with "<!DOCTYPE ".
func isDOCTYPE(view []byte) bool {
	return bytes.HasPrefix(view, doctypePrefix)
}

// isCDATA reports whether view starts with "<![CDATA[".
func isCDATA(view []byte) bool {
	return bytes.HasPrefix(view, cdataPrefix)
}

// isComment reports whether view starts with "<!--".
func isComment(view []byte) bool {
	return bytes.HasPrefix(view, commentPrefix)
}

// isNamespace reports whether view starts with "xmlns" followed by ':' or '='.
func isNamespace(view []byte) bool {
	if !bytes.HasPrefix(view, xmlnsPrefix) {
		return false
	}
	if len(view) <= len(xmlnsPrefix) {
		return false
	}
	next := view[len(xmlnsPrefix)]
	return next == ':' || next == '='
}
