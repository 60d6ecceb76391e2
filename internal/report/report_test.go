package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		totalBytes int64
		rows       []Row
		contains   []string
	}{
		{
			name:       "basic",
			url:        "example.xml",
			totalBytes: 1000,
			rows:       []Row{{Measure: "LOC", Value: 42}},
			contains:   []string{"# srcFacts: example.xml", "| LOC", "42"},
		},
		{
			name:       "zero bytes",
			url:        "",
			totalBytes: 0,
			rows:       nil,
			contains:   []string{"# srcFacts: "},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Table(&buf, tc.url, tc.totalBytes, 0, 0, tc.rows)
			out := buf.String()
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	out := Stats(1024, 2_000_000, time.Second)
	assert.Contains(t, out, "1.0 kB")
	assert.Contains(t, out, "1.000 sec")
	assert.Contains(t, out, "2.000 MLOC/sec")
}
