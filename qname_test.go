package srcxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanQName(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantFull   string
		wantPrefix string
		wantLocal  string
		wantRest   string
		wantErr    bool
	}{
		{
			name:      "unprefixed name followed by space",
			input:     "local attr",
			wantFull:  "local",
			wantLocal: "local",
			wantRest:  " attr",
		},
		{
			name:      "unprefixed name followed by close",
			input:     "r>",
			wantFull:  "r",
			wantLocal: "r",
			wantRest:  ">",
		},
		{
			name:       "prefixed name",
			input:      "n:r>",
			wantFull:   "n:r",
			wantPrefix: "n",
			wantLocal:  "r",
			wantRest:   ">",
		},
		{
			name:    "leading colon is invalid",
			input:   ":r>",
			wantErr: true,
		},
		{
			name:    "no terminator is unterminated",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty name is invalid",
			input:   ">",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, rest, err := scanQName([]byte(tc.input), "test")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantFull, string(n.full))
			assert.Equal(t, tc.wantPrefix, string(n.prefix))
			assert.Equal(t, tc.wantLocal, string(n.local))
			assert.Equal(t, tc.wantRest, string(rest))
		})
	}
}

func TestIsNameStartByte(t *testing.T) {
	assert.True(t, isNameStartByte('a'))
	assert.True(t, isNameStartByte('Z'))
	assert.True(t, isNameStartByte('_'))
	assert.True(t, isNameStartByte(':'))
	assert.False(t, isNameStartByte('0'))
	assert.False(t, isNameStartByte('>'))
	assert.False(t, isNameStartByte(' '))
}

func TestSkipWhitespace(t *testing.T) {
	assert.Equal(t, "a", string(skipWhitespace([]byte("   \t\n\ra"))))
	assert.Equal(t, "", string(skipWhitespace([]byte("   "))))
	assert.Equal(t, "x ", string(skipWhitespace([]byte("x "))))
}
