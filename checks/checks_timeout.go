package checks

import (
	"context"
	"time"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoTimeoutChecks verifies that a suite that never signals completion is
// reported as timed out and does not block the suites after it.
func DoTimeoutChecks(t *framework.T) {
	t.Run("a hung suite does not block the run", func(t *framework.T) {
		release := make(chan struct{})
		t.Defer(func() { close(release) }) // let the abandoned goroutine exit

		var laterRan bool
		inner := framework.NewRunner(nil, nil, 50*time.Millisecond)
		require.NoError(t, inner.Register("hangs", func(t *framework.T) {
			<-release
		}))
		require.NoError(t, inner.Register("later", func(t *framework.T) {
			laterRan = true
		}))

		start := time.Now()
		results := inner.Run(context.Background())
		elapsed := time.Since(start)

		require.Len(t, results.Suites, 2)
		assert.Equal(t, framework.OutcomeTimedOut, results.Suites[0].Outcome)
		assert.Equal(t, framework.OutcomePassed, results.Suites[1].Outcome)
		assert.True(t, laterRan)
		assert.False(t, results.OK())
		assert.Less(t, elapsed, 2*time.Second, "hung suite delayed the run far beyond its bound")

		var timeoutErr framework.TimeoutError
		require.NotEmpty(t, results.Suites[0].Errors)
		require.ErrorAs(t, results.Suites[0].Errors[0], &timeoutErr)
		assert.Equal(t, "hangs", timeoutErr.Name)
	})

	t.Run("per-suite timeouts can be overridden", func(t *framework.T) {
		inner := framework.NewRunner(nil, nil, 10*time.Millisecond)
		require.NoError(t, inner.Register("slow but fine", func(t *framework.T) {
			time.Sleep(30 * time.Millisecond)
		}))
		require.NoError(t, inner.SetSuiteTimeout("slow but fine", time.Second))

		results := inner.Run(context.Background())

		require.Len(t, results.Suites, 1)
		assert.Equal(t, framework.OutcomePassed, results.Suites[0].Outcome)
	})
}
