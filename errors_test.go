package srcxml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorString(t *testing.T) {
	testCases := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "production and message only",
			err:  errSyntax("start tag", "missing > terminator"),
			want: `parser error : start tag: missing > terminator`,
		},
		{
			name: "production, message, and name",
			err:  errSyntaxName("attribute", "missing =", "href"),
			want: `parser error : attribute: missing = "href"`,
		},
		{
			name: "message only",
			err:  errEmptyInput(),
			want: `parser error : no bytes available`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("connection reset")
	err := errIO(inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, InputIO, err.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty input", EmptyInput.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
