package srcxml

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefillBufferBasic(t *testing.T) {
	rb := NewRefillBuffer()
	r := strings.NewReader("hello world")

	n, err := rb.Refill(r)
	assert.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "hello world", string(rb.View()))

	rb.Advance(6)
	assert.Equal(t, "world", string(rb.View()))

	n, err = rb.Refill(r)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "world", string(rb.View()))
}

func TestRefillBufferPreservesUnconsumedPrefix(t *testing.T) {
	rb := NewRefillBuffer()
	r := strings.NewReader("ab")
	_, err := rb.Refill(r)
	assert.NoError(t, err)
	rb.Advance(1)
	assert.Equal(t, "b", string(rb.View()))

	more := strings.NewReader("cd")
	_, err = rb.Refill(more)
	assert.NoError(t, err)
	assert.Equal(t, "bcd", string(rb.View()))
}

func TestRefillBufferStripsUTF8BOM(t *testing.T) {
	rb := NewRefillBuffer()
	r := strings.NewReader("\xEF\xBB\xBF<r/>")
	_, err := rb.Refill(r)
	assert.NoError(t, err)
	assert.Equal(t, "<r/>", string(rb.View()))
}

func TestRefillBufferLeavesNonUTF8BOMAlone(t *testing.T) {
	rb := NewRefillBuffer()
	r := strings.NewReader("\xFE\xFF<r/>")
	_, err := rb.Refill(r)
	assert.NoError(t, err)
	assert.Equal(t, "\xFE\xFF<r/>", string(rb.View()))
}

type flakyReader struct {
	attempt int
	temporaryFails int
	payload string
	sent    bool
}

func (f *flakyReader) Read(p []byte) (int, error) {
	if f.attempt < f.temporaryFails {
		f.attempt++
		return 0, &temporaryError{}
	}
	if f.sent {
		return 0, io.EOF
	}
	f.sent = true
	return copy(p, f.payload), nil
}

type temporaryError struct{}

func (*temporaryError) Error() string   { return "temporary failure" }
func (*temporaryError) Temporary() bool { return true }

func TestRefillBufferRetriesTransientError(t *testing.T) {
	rb := NewRefillBuffer()
	r := &flakyReader{temporaryFails: 2, payload: "data"}
	n, err := rb.Refill(r)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "data", string(rb.View()))
}

type permanentErrorReader struct{}

func (*permanentErrorReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRefillBufferSurfacesPermanentError(t *testing.T) {
	rb := NewRefillBuffer()
	_, err := rb.Refill(&permanentErrorReader{})
	assert.Error(t, err)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, InputIO, pe.Kind)
}
