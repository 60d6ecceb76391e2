package srcxml

import (
	"bytes"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// BlockSize is the minimum window the driver tries to keep available before
// attempting to parse further; spec.md's BLOCK_SIZE.
const BlockSize = 4096

// BufferCapacity is the fixed size of the RefillBuffer's storage. It must be
// strictly larger than BlockSize, since a refill always reserves one
// BlockSize of tail headroom for lookahead. The reference C++ implementation
// uses 16*16*BlockSize; Go keeps the same ratio.
const BufferCapacity = 16 * 16 * BlockSize

// utf8BOM is the three-byte UTF-8 byte order mark. Stripping a leading BOM
// is a plain literal-prefix compare, so it needs no encoding library; one
// that understood UTF-16/UTF-32 BOMs would also want to transcode them,
// which spec.md's encoding-conversion non-goal rules out (see DESIGN.md).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RefillBuffer owns a fixed-capacity byte region and the unconsumed view
// into it. It is the sole owner of bytes for a parse: every slice handed to
// scanners and handlers is a sub-slice of buf, valid only until the next
// refill.
type RefillBuffer struct {
	buf  []byte // fixed capacity storage, reused across refills
	view []byte // unconsumed suffix, a sub-slice of buf
	boff backoff.BackOff
}

// NewRefillBuffer allocates a RefillBuffer with the standard BufferCapacity.
func NewRefillBuffer() *RefillBuffer {
	return &RefillBuffer{
		buf: make([]byte, BufferCapacity),
	}
}

// View returns the current unconsumed bytes. The returned slice is valid
// only until the next call to Refill or Advance.
func (b *RefillBuffer) View() []byte { return b.view }

// Len reports the length of the current unconsumed view.
func (b *RefillBuffer) Len() int { return len(b.view) }

// Advance consumes n bytes from the front of the view.
func (b *RefillBuffer) Advance(n int) { b.view = b.view[n:] }

// SetView replaces the view with a sub-slice already known to be within buf,
// used by scanners that compute the remaining tail directly.
func (b *RefillBuffer) SetView(v []byte) { b.view = v }

// temporary is satisfied by errors (notably net.Error) that indicate a
// retryable, transient failure, generalizing the reference implementation's
// "retry while errno == EINTR" loop beyond POSIX-specific syscalls.
type temporary interface {
	Temporary() bool
}

// Refill preserves the unconsumed prefix by copying it to the start of buf,
// then reads from r into the remaining capacity (minus one BlockSize of
// reserved tail headroom). It returns the number of bytes read; 0 signals
// clean end-of-input. A read error that looks transient is retried a bounded
// number of times with a short backoff before being surfaced.
func (b *RefillBuffer) Refill(r io.Reader) (int, error) {
	// view is nil only before the first refill; later views are sub-slices
	// of buf, even when empty.
	first := b.view == nil
	n := copy(b.buf, b.view)
	if n >= len(b.buf)-BlockSize {
		return 0, errSyntax("refill", "unconsumed content exceeds buffer capacity")
	}
	readable := b.buf[n : len(b.buf)-BlockSize]

	read, err := b.readWithRetry(r, readable)
	if err != nil {
		return 0, errIO(err)
	}

	b.view = b.buf[:n+read]
	if first && read > 0 {
		b.stripBOM()
	}
	return read, nil
}

func (b *RefillBuffer) readWithRetry(r io.Reader, buf []byte) (int, error) {
	if b.boff == nil {
		b.boff = backoff.WithMaxRetries(backoff.NewConstantBackOff(5*time.Millisecond), 3)
	}
	b.boff.Reset()

	var n int
	var readErr error
	op := func() error {
		n, readErr = r.Read(buf)
		if readErr == nil || readErr == io.EOF {
			return nil
		}
		if te, ok := readErr.(temporary); ok && te.Temporary() {
			return readErr
		}
		return backoff.Permanent(readErr)
	}
	if err := backoff.Retry(op, b.boff); err != nil {
		if pe, ok := err.(*backoff.PermanentError); ok {
			return 0, pe.Err
		}
		return 0, err
	}
	if readErr != nil && readErr != io.EOF {
		return 0, readErr
	}
	return n, nil
}

func (b *RefillBuffer) stripBOM() {
	if bytes.HasPrefix(b.view, utf8BOM) {
		b.view = b.view[len(utf8BOM):]
	}
}
