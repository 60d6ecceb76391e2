// Package progress publishes "bytes consumed so far" updates over
// Server-Sent Events while a long-running parse is in flight. It is an
// ambient convenience the reference tools never had (they are batch CLIs
// writing a single report at exit); spec.md's external-interfaces section
// sketches an optional progress feed for driver integration, and
// tmaxmax-go-sse's Server/Message API is the natural fit for it.
package progress

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tmaxmax/go-sse"
)

// Publisher periodically emits the current byte count to every connected
// SSE client. Server.ServeHTTP always subscribes incoming clients to
// sse.DefaultTopic, so publishes must target that same (implied) topic --
// passing no topics to Publish does exactly that.
type Publisher struct {
	server *sse.Server
}

// NewPublisher wires a fresh sse.Server, ready to be mounted as an
// http.Handler by the caller (cmd/srcfacts and cmd/xmlstats use it as the
// server's root handler).
func NewPublisher() *Publisher {
	return &Publisher{server: sse.NewServer()}
}

// Handler returns the http.Handler clients subscribe to.
func (p *Publisher) Handler() http.Handler { return p.server }

// Run publishes the value of read() to every connected client each interval,
// until ctx is canceled. A publish failure is treated as transient (a
// client that hung up mid-write, say) and retried with a short backoff
// rather than aborting the whole parse.
func (p *Publisher) Run(ctx context.Context, interval time.Duration, read func() int64) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publish(read())
		}
	}
}

func (p *Publisher) publish(bytesConsumed int64) {
	msg := &sse.Message{}
	msg.AppendData([]byte(strconv.FormatInt(bytesConsumed, 10)))

	boff := backoff.WithMaxRetries(backoff.NewConstantBackOff(50*time.Millisecond), 2)
	_ = backoff.Retry(func() error {
		return p.server.Publish(msg)
	}, boff)
}

// Shutdown closes all open client connections.
func (p *Publisher) Shutdown() error { return p.server.Shutdown() }
