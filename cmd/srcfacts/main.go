// Command srcfacts reports measures of the source code embedded in a srcML
// XML document: character count, lines of code, file/class/function counts,
// declarations, expressions, comments, returns, line comments, and string
// literals. It is a direct port of original_source's srcFacts.cpp onto the
// srcxml streaming parser.
package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/srcml-tools/srcxml"
	"github.com/srcml-tools/srcxml/internal/progress"
	"github.com/srcml-tools/srcxml/internal/report"
)

var errColor = color.New(color.FgRed)

type factsHandler struct {
	srcxml.BaseHandler

	url              string
	textSize         int64
	loc              int64
	exprCount        int64
	functionCount    int64
	classCount       int64
	unitCount        int64
	declCount        int64
	commentCount     int64
	returnCount      int64
	lineCommentCount int64
	stringCount      int64
	currentLocalName string
}

func (h *factsHandler) StartTag(qname, prefix, localName []byte) {
	name := srcxml.UnsafeString(localName)
	h.currentLocalName = string(localName)
	switch name {
	case "expr":
		h.exprCount++
	case "decl":
		h.declCount++
	case "comment":
		h.commentCount++
	case "function":
		h.functionCount++
	case "unit":
		h.unitCount++
	case "class":
		h.classCount++
	case "return":
		h.returnCount++
	}
}

func (h *factsHandler) Attribute(qname, prefix, localName, value []byte) {
	name := srcxml.UnsafeString(localName)
	if h.currentLocalName == "unit" && name == "url" {
		h.url = string(value)
	}
	val := srcxml.UnsafeString(value)
	if h.currentLocalName == "literal" && val == "string" {
		h.stringCount++
	} else if h.currentLocalName == "comment" && val == "line" {
		h.lineCommentCount++
	}
}

func (h *factsHandler) Character(text []byte) {
	h.textSize += int64(len(text))
	h.loc += int64(bytes.Count(text, []byte{'\n'}))
}

func (h *factsHandler) CDATA(text []byte) {
	h.textSize += int64(len(text))
	h.loc += int64(bytes.Count(text, []byte{'\n'}))
}

func run(path string, verbose bool, serveAddr string) error {
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

	h := &factsHandler{}
	p := srcxml.New(in, h)

	if serveAddr != "" {
		pub := progress.NewPublisher()
		srv := &http.Server{Addr: serveAddr, Handler: pub.Handler()}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go pub.Run(ctx, 500*time.Millisecond, p.TotalBytes)
		go func() {
			log.Debug("progress server listening", "addr", serveAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("progress server failed", "err", err)
			}
		}()
		defer func() {
			cancel()
			_ = pub.Shutdown()
			_ = srv.Shutdown(context.Background())
		}()
	}

	start := time.Now()
	if err := p.Parse(); err != nil {
		errColor.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	elapsed := time.Since(start)

	files := h.unitCount - 1
	if files < 1 {
		files = 1
	}

	report.Table(os.Stdout, h.url, p.TotalBytes(), h.loc, elapsed, []report.Row{
		{Measure: "Characters", Value: h.textSize},
		{Measure: "LOC", Value: h.loc},
		{Measure: "Files", Value: files},
		{Measure: "Classes", Value: h.classCount},
		{Measure: "Functions", Value: h.functionCount},
		{Measure: "Declarations", Value: h.declCount},
		{Measure: "Expressions", Value: h.exprCount},
		{Measure: "Comments", Value: h.commentCount},
		{Measure: "Returns", Value: h.returnCount},
		{Measure: "Line Comments", Value: h.lineCommentCount},
		{Measure: "Strings", Value: h.stringCount},
	})
	fmt.Fprint(os.Stderr, "\n"+report.Stats(p.TotalBytes(), h.loc, elapsed))
	log.Debug("parse complete", "bytes", p.TotalBytes(), "elapsed", elapsed)
	return nil
}

func main() {
	var verbose bool
	var serveAddr string

	cmd := &cobra.Command{
		Use:   "srcfacts [file]",
		Short: "Report measures of source code embedded in a srcML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, verbose, serveAddr)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&serveAddr, "serve", "", "serve parse progress as Server-Sent Events on this address (e.g. :8080), disabled by default")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
