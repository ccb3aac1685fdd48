package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	chat  chan string
	email chan string
	err   error
}

func (r *recordingNotifier) SendChatMessage(_ context.Context, to, _ string) error {
	r.chat <- to
	return r.err
}

func (r *recordingNotifier) SendEmail(_ context.Context, to, _, _, _ string) error {
	r.email <- to
	return r.err
}

func TestAsync_SendChatMessage_ReturnsImmediately(t *testing.T) {
	inner := &recordingNotifier{chat: make(chan string, 1), email: make(chan string, 1)}
	async := NewAsync(inner)

	err := async.SendChatMessage(context.Background(), "+15550000001", "hello")
	require.NoError(t, err)

	select {
	case to := <-inner.chat:
		assert.Equal(t, "+15550000001", to)
	case <-time.After(2 * time.Second):
		t.Fatal("inner notifier was never called")
	}
}

func TestAsync_SwallowsDeliveryErrors(t *testing.T) {
	inner := &recordingNotifier{chat: make(chan string, 1), email: make(chan string, 1), err: errors.New("twilio down")}
	async := NewAsync(inner)

	// A failing inner send must never surface to the caller.
	require.NoError(t, async.SendEmail(context.Background(), "a@b.c", "s", "<p>h</p>", "t"))

	select {
	case to := <-inner.email:
		assert.Equal(t, "a@b.c", to)
	case <-time.After(2 * time.Second):
		t.Fatal("inner notifier was never called")
	}
}

func TestAsync_OutlivesCanceledRequestContext(t *testing.T) {
	inner := &recordingNotifier{chat: make(chan string, 1), email: make(chan string, 1)}
	async := NewAsync(inner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, async.SendChatMessage(ctx, "+15550000001", "hello"))

	select {
	case <-inner.chat:
	case <-time.After(2 * time.Second):
		t.Fatal("send did not survive context cancellation")
	}
}
