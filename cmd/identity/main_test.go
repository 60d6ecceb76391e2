package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcml-tools/srcxml"
)

func TestIdentityHandler(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "self-closing root",
			input: `<unit/>`,
			want:  `<unit/>`,
		},
		{
			name:  "attribute and character data",
			input: `<unit lang="C++">hi</unit>`,
			want:  `<unit lang="C++">hi</unit>`,
		},
		{
			name:  "nested elements",
			input: `<unit><expr>x</expr></unit>`,
			want:  `<unit><expr>x</expr></unit>`,
		},
		{
			name:  "comment and CDATA",
			input: `<unit>x<!--c--><![CDATA[d]]></unit>`,
			want:  "<unit>x<!--c-->\n<![CDATA[d]]></unit>",
		},
		{
			name:  "escaped character data",
			input: `<unit>a &lt; b &amp; c &gt; d</unit>`,
			want:  `<unit>a &lt; b &amp; c &gt; d</unit>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			out := bufio.NewWriter(&buf)
			h := newIdentityHandler(out)

			p := srcxml.New(strings.NewReader(tc.input), h)
			require.NoError(t, p.Parse())
			out.Flush()

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestIdentityHandlerXMLDeclaration(t *testing.T) {
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	h := newIdentityHandler(out)

	p := srcxml.New(strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?><unit/>`), h)
	require.NoError(t, p.Parse())
	out.Flush()

	got := buf.String()
	assert.Contains(t, got, `<?xml version="1.0" encoding="UTF-8" ?>`)
	assert.Contains(t, got, "<unit/>")
}

func TestIdentityHandlerNamespace(t *testing.T) {
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	h := newIdentityHandler(out)

	p := srcxml.New(strings.NewReader(`<n:unit xmlns:n="http://example.com"/>`), h)
	require.NoError(t, p.Parse())
	out.Flush()

	assert.Contains(t, buf.String(), `xmlns:n="http://example.com"`)
}
