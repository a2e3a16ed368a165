package progress

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelOrderAndDisconnect(t *testing.T) {
	ch := NewChannel()
	_, status := ch.TryRecv()
	assert.Equal(t, Empty, status)

	for i := 1; i <= 3; i++ {
		require.NoError(t, ch.Send(Step("step", i, 3)))
	}
	require.NoError(t, ch.Send(Success()))
	ch.Close()
	assert.ErrorIs(t, ch.Send(Step("late", 0, 0)), ErrClosed)

	for i := 1; i <= 3; i++ {
		e, status := ch.TryRecv()
		require.Equal(t, Received, status)
		assert.Equal(t, i, e.Current)
	}
	e, status := ch.TryRecv()
	require.Equal(t, Received, status)
	assert.Equal(t, KindSuccess, e.Kind)

	_, status = ch.TryRecv()
	assert.Equal(t, Disconnected, status)
	_, status = ch.TryRecv()
	assert.Equal(t, Disconnected, status)
}

func TestChannelUnbounded(t *testing.T) {
	ch := NewChannel()
	for i := 0; i < 10000; i++ {
		require.NoError(t, ch.Send(Step("s", i, 0)))
	}
	assert.Equal(t, 10000, ch.Len())
}

func TestChannelConcurrentProducer(t *testing.T) {
	ch := NewChannel()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer ch.Close()
		for i := 1; i <= 500; i++ {
			ch.Send(Step("s", i, 500))
		}
	}()

	next := 1
	for {
		e, status := ch.TryRecv()
		if status == Disconnected {
			break
		}
		if status == Empty {
			time.Sleep(time.Microsecond)
			continue
		}
		require.Equal(t, next, e.Current)
		next++
	}
	wg.Wait()
	assert.Equal(t, 501, next)
}

func TestEventFormatting(t *testing.T) {
	assert.Equal(t, "Downloaded patch 5 (1/10)...", Step("Downloaded patch 5", 1, 10).String())
	assert.Equal(t, "Contacting Server", Step("Contacting Server", 0, 0).String())
	f := Failure(errors.New("boom"))
	assert.True(t, f.IsTerminal())
	assert.Equal(t, "ERROR: boom", f.String())
	assert.True(t, Success().IsTerminal())
	assert.False(t, Step("x", 1, 1).IsTerminal())
	assert.Equal(t, "failure", KindFailure.String())
}
