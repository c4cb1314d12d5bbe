package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/advent_ive_go/effects/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func TestFireAndForgetHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan string, 1)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			received <- msg
		},
		func() {}, // no-op teardown
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, "hello")

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetHandler_CancelContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	time.Sleep(100 * time.Millisecond)

	called := make(chan struct{}, 1)

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		10,
		func(ctx context.Context, msg string) {
			called <- struct{}{}
		},
		func() {},
	)
	defer handler.Close()

	handler.FireAndForgetEffect(ctx, "should-not-send")

	select {
	case <-called:
		t.Fatal("handler should not have been called")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFireAndForgetHandler_CloseRunsTeardownOnce(t *testing.T) {
	ctx := context.Background()
	teardowns := 0

	handler := handlers.NewFireAndForgetHandler(
		ctx,
		1,
		func(ctx context.Context, msg string) {},
		func() { teardowns++ },
	)

	handler.Close()
	handler.Close()

	assert.Equal(t, 1, teardowns)

	// dropped, must not block or panic
	handler.FireAndForgetEffect(ctx, "after-close")
}
