// Command xmlstats reports how many of each XML construct a document
// contains: start/end tags, attributes, character runs, namespaces,
// comments, CDATA sections, and processing instructions. It is a port of
// original_source's XMLStatsHandler.cpp, whose full field list the
// distilled spec.md only summarized as "tallies XML construct occurrences".
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

type statsHandler struct {
	srcxml.BaseHandler

	unitCount                  int64
	loc                        int64
	startDocumentCount         int64
	xmlDeclarationCount        int64
	startTagCount              int64
	endTagCount                int64
	charactersCount            int64
	attributeCount             int64
	namespaceCount             int64
	commentCount               int64
	cdataCount                 int64
	processingInstructionCount int64
	endDocumentCount           int64
}

func (h *statsHandler) StartDocument() { h.startDocumentCount++ }

func (h *statsHandler) XMLDeclaration(version, encoding, standalone []byte, hasEncoding, hasStandalone bool) {
	h.xmlDeclarationCount++
}

func (h *statsHandler) StartTag(qname, prefix, localName []byte) {
	h.startTagCount++
	if srcxml.UnsafeString(localName) == "unit" {
		h.unitCount++
	}
}

func (h *statsHandler) EndTag(qname, prefix, localName []byte) { h.endTagCount++ }

func (h *statsHandler) Character(text []byte) {
	h.charactersCount++
	h.loc += int64(bytes.Count(text, []byte{'\n'}))
}

func (h *statsHandler) Attribute(qname, prefix, localName, value []byte) { h.attributeCount++ }

func (h *statsHandler) Namespace(prefix, uri []byte) { h.namespaceCount++ }

func (h *statsHandler) Comment(text []byte) { h.commentCount++ }

func (h *statsHandler) CDATA(text []byte) {
	h.cdataCount++
	h.loc += int64(bytes.Count(text, []byte{'\n'}))
}

func (h *statsHandler) ProcessingInstruction(target, data []byte) { h.processingInstructionCount++ }

func (h *statsHandler) EndDocument() { h.endDocumentCount++ }

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

	h := &statsHandler{}
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

	report.Table(os.Stdout, "", p.TotalBytes(), h.loc, elapsed, []report.Row{
		{Measure: "LOC", Value: h.loc},
		{Measure: "Files", Value: files},
		{Measure: "StartDocument", Value: h.startDocumentCount},
		{Measure: "XMLDeclaration", Value: h.xmlDeclarationCount},
		{Measure: "StartTag", Value: h.startTagCount},
		{Measure: "EndTag", Value: h.endTagCount},
		{Measure: "Characters", Value: h.charactersCount},
		{Measure: "Attribute", Value: h.attributeCount},
		{Measure: "Namespace", Value: h.namespaceCount},
		{Measure: "Comment", Value: h.commentCount},
		{Measure: "CDATA", Value: h.cdataCount},
		{Measure: "ProcessingInstr", Value: h.processingInstructionCount},
		{Measure: "EndDocument", Value: h.endDocumentCount},
	})
	fmt.Fprint(os.Stderr, "\n"+report.Stats(p.TotalBytes(), h.loc, elapsed))
	log.Debug("parse complete", "bytes", p.TotalBytes(), "elapsed", elapsed)
	return nil
}

func main() {
	var verbose bool
	var serveAddr string

	cmd := &cobra.Command{
		Use:   "xmlstats [file]",
		Short: "Report counts of each XML construct in a document",
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
