// Command identity re-serializes a srcML XML document from its parsed
// events, reproducing the input as closely as the event model allows. It is
// a port of original_source's IdentityHandler.cpp, including its
// lazily-closed start tag bracket: a StartTag's '>' is deferred while
// Attribute and Namespace events are written inside the tag, until the next
// Character, CDATA, Comment, ProcessingInstruction, or StartTag event forces
// it closed, or EndTag turns it into "/>".
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/srcml-tools/srcxml"
)

var errColor = color.New(color.FgRed)

// identityHandler re-serializes parsed XML events to out. unclosedBrackets
// counts pending '>' terminators for start tags whose full extent (plain
// close vs. the next sibling's close) isn't known until the next event
// arrives -- a field here, not the reference implementation's global.
type identityHandler struct {
	srcxml.BaseHandler

	out              *bufio.Writer
	unclosedBrackets int
}

func newIdentityHandler(out *bufio.Writer) *identityHandler {
	return &identityHandler{out: out}
}

func (h *identityHandler) closeOpenBracket() {
	if h.unclosedBrackets > 0 {
		h.unclosedBrackets--
		h.out.WriteByte('>')
	}
}

func (h *identityHandler) XMLDeclaration(version, encoding, standalone []byte, hasEncoding, hasStandalone bool) {
	fmt.Fprintf(h.out, "<?xml version=%q ", version)
	if hasEncoding {
		fmt.Fprintf(h.out, "encoding=%q ", encoding)
	}
	if hasStandalone {
		fmt.Fprintf(h.out, "standalone=%q", standalone)
	}
	h.out.WriteString("?>\n")
}

func (h *identityHandler) StartTag(qname, prefix, localName []byte) {
	h.closeOpenBracket()
	h.out.WriteByte('<')
	h.out.Write(qname)
	h.unclosedBrackets++
}

func (h *identityHandler) EndTag(qname, prefix, localName []byte) {
	if h.unclosedBrackets > 0 {
		h.unclosedBrackets--
		h.out.WriteString("/>")
		return
	}
	h.out.WriteString("</")
	h.out.Write(qname)
	h.out.WriteByte('>')
}

func (h *identityHandler) Character(text []byte) {
	h.closeOpenBracket()
	writeEscaped(h.out, text)
}

func (h *identityHandler) Attribute(qname, prefix, localName, value []byte) {
	h.out.WriteByte(' ')
	h.out.Write(qname)
	fmt.Fprintf(h.out, "=%q", value)
}

func (h *identityHandler) Namespace(prefix, uri []byte) {
	h.out.WriteString(" xmlns")
	if len(prefix) > 0 {
		h.out.WriteByte(':')
		h.out.Write(prefix)
	}
	fmt.Fprintf(h.out, "=%q", uri)
}

func (h *identityHandler) Comment(text []byte) {
	h.closeOpenBracket()
	h.out.WriteString("<!--")
	h.out.Write(text)
	h.out.WriteString("-->\n")
}

func (h *identityHandler) CDATA(text []byte) {
	h.closeOpenBracket()
	h.out.WriteString("<![CDATA[")
	writeEscaped(h.out, text)
	h.out.WriteString("]]>")
}

func (h *identityHandler) ProcessingInstruction(target, data []byte) {
	h.closeOpenBracket()
	h.out.WriteString("<?")
	h.out.Write(target)
	h.out.WriteByte(' ')
	h.out.Write(data)
	h.out.WriteString("?>\n")
}

// writeEscaped escapes '<', '>', and '&', matching original_source's
// escape() -- the minimal set needed to keep re-serialized character data
// and CDATA content well-formed.
func writeEscaped(out *bufio.Writer, text []byte) {
	for _, c := range text {
		switch c {
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		case '&':
			out.WriteString("&amp;")
		default:
			out.WriteByte(c)
		}
	}
}

func run(path string, verbose bool) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	var in *os.File
	if path == "" || path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	h := newIdentityHandler(out)
	p := srcxml.New(in, h)

	if err := p.Parse(); err != nil {
		errColor.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	out.Flush()
	log.Debug("parse complete", "bytes", p.TotalBytes())
	return nil
}

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "identity [file]",
		Short: "Re-serialize a srcML XML document from its parsed events",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
