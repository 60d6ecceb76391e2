package progress

import (
	"bufio"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublisherRunPublishesBytesConsumed(t *testing.T) {
	pub := NewPublisher()
	ts := httptest.NewServer(pub.Handler())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pub.Run(ctx, 10*time.Millisecond, func() int64 { return 42 })

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	found := false
	timeout := time.After(2 * time.Second)
	for !found {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("progress stream closed before the published byte count appeared")
			}
			found = strings.Contains(line, "42")
		case <-timeout:
			t.Fatal("timed out waiting for the published byte count")
		}
	}
}

func TestPublisherShutdown(t *testing.T) {
	pub := NewPublisher()
	require.NoError(t, pub.Shutdown())
}
