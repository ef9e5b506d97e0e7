package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"numberfacts/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestShutdownRunsComponentsInReverseOrder(t *testing.T) {
	m := NewManager(logger.NewNop())

	var mu sync.Mutex
	var order []string
	for _, name := range []string{"view", "controller", "service"} {
		name := name
		m.Register(name, Func(func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}))
	}

	m.Shutdown()

	assert.Equal(t, []string{"service", "controller", "view"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := NewManager(logger.NewNop())

	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetStepTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	ran := false
	m.Register("after", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ran)
}

func TestListenStopsWithShutdown(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.Listen()
	m.Shutdown()
	// goleak in TestMain verifies the signal goroutine exited.
}
