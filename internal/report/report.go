// Package report renders the markdown summary table and stderr performance
// line shared by srcfacts and xmlstats, grounded on original_source's
// srcFacts.cpp/xmlstats.cpp main() tail: a "# srcFacts: <url>" heading, a
// two-column markdown table sized to the byte count, and stderr lines of
// total bytes / elapsed seconds / MLOC per second.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Row is one line of the markdown summary table.
type Row struct {
	Measure string
	Value   int64
}

// Table renders the url heading and rows as a markdown table to out (stdout
// in the CLI). totalBytes only sizes the value column; loc and elapsed are
// not used. The performance stats are formatted separately by Stats, which
// the caller writes to stderr.
func Table(out io.Writer, url string, totalBytes int64, loc int64, elapsed time.Duration, rows []Row) {
	valueWidth := 5
	if totalBytes > 0 {
		if w := int(math.Log10(float64(totalBytes))*1.3 + 1); w > valueWidth {
			valueWidth = w
		}
	}

	fmt.Fprintf(out, "# srcFacts: %s\n", url)
	fmt.Fprintf(out, "| Measure      | %*s |\n", valueWidth, "Value")
	fmt.Fprintf(out, "|:-------------|-%s:|\n", dashes(valueWidth))
	for _, row := range rows {
		fmt.Fprintf(out, "| %-12s | %*d |\n", row.Measure, valueWidth, row.Value)
	}
}

// Stats formats the trailing performance lines the reference tool writes to
// stderr, one value per line: total bytes (human-readable), elapsed time,
// and lines parsed per second expressed in millions of lines.
func Stats(totalBytes int64, loc int64, elapsed time.Duration) string {
	seconds := elapsed.Seconds()
	mlocPerSecond := 0.0
	if seconds > 0 {
		mlocPerSecond = float64(loc) / seconds / 1_000_000
	}
	return fmt.Sprintf("%s\n%.3f sec\n%.3f MLOC/sec\n",
		humanize.Bytes(uint64(totalBytes)), seconds, mlocPerSecond)
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
