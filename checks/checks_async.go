package checks

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoAsyncCompletionChecks verifies that a suite's asynchronous work, as long as
// the suite waits for it before returning, is fully complete before the next
// suite starts.
func DoAsyncCompletionChecks(t *framework.T) {
	t.Run("async work finishes before the next suite starts", func(t *framework.T) {
		var asyncDone int32
		var observedByNext int32

		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("spawns workers", func(t *framework.T) {
			var wg sync.WaitGroup
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&asyncDone, 1)
				}()
			}
			wg.Wait()
		}))
		require.NoError(t, inner.Register("observes", func(t *framework.T) {
			observedByNext = atomic.LoadInt32(&asyncDone)
		}))

		results := inner.Run(context.Background())

		require.True(t, results.OK())
		assert.Equal(t, int32(4), observedByNext)
	})

	t.Run("deferred cleanups run before the next suite", func(t *framework.T) {
		var order []string
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("with cleanup", func(t *framework.T) {
			t.Defer(func() { order = append(order, "cleanup-2") })
			t.Defer(func() { order = append(order, "cleanup-1") })
			order = append(order, "body")
		}))
		require.NoError(t, inner.Register("next", func(t *framework.T) {
			order = append(order, "next")
		}))

		results := inner.Run(context.Background())

		require.True(t, results.OK())
		assert.Equal(t, []string{"body", "cleanup-1", "cleanup-2", "next"}, order)
	})
}
