package handlers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/on-the-ground/advent_ive_go/effects/binding"
	"github.com/on-the-ground/advent_ive_go/effects/internal/handlers"
	"github.com/on-the-ground/advent_ive_go/tribonacci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexRequest is a tribonacci request tagged with the order it was sent in.
type indexRequest struct {
	tribonacci.Payload
	seq int
}

func TestSingleQueue_AnswersTribonacciRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := tribonacci.New()
	answers := make(chan uint64, 3)
	dispatcher := handlers.NewSingleQueue(ctx, 3, func(_ context.Context, p tribonacci.Payload) {
		v, err := ev.Evaluate(uint64(p))
		assert.NoError(t, err)
		answers <- v
	})

	for _, n := range []tribonacci.Payload{4, 5, 10} {
		dispatcher.GetChannelOf(n) <- n
	}

	var got []uint64
	for range 3 {
		select {
		case v := <-answers:
			got = append(got, v)
		case <-time.After(time.Second):
			t.Fatal("request not handled")
		}
	}
	assert.Equal(t, []uint64{6, 11, 230}, got)
}

func TestPartitionedQueue_RoutesByIndex(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := handlers.NewPartitionedQueue(ctx, 4, 1, func(context.Context, tribonacci.Payload) {})

	seen := make(map[chan tribonacci.Payload]struct{})
	for n := tribonacci.Payload(0); n < 64; n++ {
		ch := dispatcher.GetChannelOf(n)
		assert.Equal(t, ch, dispatcher.GetChannelOf(n), "index %d moved worker", n)
		seen[ch] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "every index landed on one worker")
}

func TestPartitionedQueue_RoutesBindingKeys(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := handlers.NewPartitionedQueue(ctx, 3, 1, func(context.Context, binding.Payload) {})

	key := "config.puzzle.input_dir"
	first := dispatcher.GetChannelOf(binding.Payload(key))
	for range 10 {
		assert.Equal(t, first, dispatcher.GetChannelOf(binding.Payload(key)))
	}
}

func TestPartitionedQueue_SameIndexHandledInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu        sync.Mutex
		processed = make(map[tribonacci.Payload][]int)
		wg        sync.WaitGroup
	)
	dispatcher := handlers.NewPartitionedQueue(ctx, 3, 8, func(_ context.Context, r indexRequest) {
		defer wg.Done()
		mu.Lock()
		processed[r.Payload] = append(processed[r.Payload], r.seq)
		mu.Unlock()
	})

	for seq := range 20 {
		for _, n := range []tribonacci.Payload{30, 31, 32} {
			wg.Add(1)
			r := indexRequest{Payload: n, seq: seq}
			dispatcher.GetChannelOf(r) <- r
		}
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for n, seqs := range processed {
		require.Len(t, seqs, 20, "index %d", n)
		for i, s := range seqs {
			assert.Equal(t, i, s, "index %d handled out of order", n)
		}
	}
}

func TestSingleQueue_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	handled := make(chan tribonacci.Payload, 2)
	dispatcher := handlers.NewSingleQueue(ctx, 1, func(_ context.Context, p tribonacci.Payload) {
		handled <- p
	})

	dispatcher.GetChannelOf(3) <- 3
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("request not handled before cancel")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	dispatcher.GetChannelOf(4) <- 4 // buffered, never drained

	select {
	case p := <-handled:
		t.Fatalf("handled %d after cancel", p)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSingleQueue_BackpressureWhenBufferIsFull(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entered := make(chan struct{}, 3)
	release := make(chan struct{})
	dispatcher := handlers.NewSingleQueue(ctx, 1, func(context.Context, tribonacci.Payload) {
		entered <- struct{}{}
		<-release
	})
	ch := dispatcher.GetChannelOf(0)

	ch <- 10
	<-entered
	ch <- 11 // fills the buffer

	sent := make(chan struct{})
	go func() {
		ch <- 12
		close(sent)
	}()

	select {
	case <-sent:
		t.Fatal("send succeeded with a full buffer")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("send never unblocked")
	}
}
