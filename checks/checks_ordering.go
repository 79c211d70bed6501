package checks

import (
	"context"
	"sync"
	"time"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lifecycleTrace records suite lifecycle events from probe suites, and watches
// for overlapping suite lifetimes.
type lifecycleTrace struct {
	lock       sync.Mutex
	events     []string
	active     int
	overlapped bool
}

func (lt *lifecycleTrace) enter(name string) {
	lt.lock.Lock()
	lt.active++
	if lt.active > 1 {
		lt.overlapped = true
	}
	lt.events = append(lt.events, name+":start")
	lt.lock.Unlock()
}

func (lt *lifecycleTrace) leave(name string) {
	lt.lock.Lock()
	lt.active--
	lt.events = append(lt.events, name+":end")
	lt.lock.Unlock()
}

func (lt *lifecycleTrace) snapshot() ([]string, bool) {
	lt.lock.Lock()
	defer lt.lock.Unlock()
	return append([]string(nil), lt.events...), lt.overlapped
}

// probeSuite returns a suite function that reports its lifecycle to the trace
// and lingers briefly so that any overlap would be observable.
func probeSuite(trace *lifecycleTrace, name string) framework.SuiteFunc {
	return func(t *framework.T) {
		trace.enter(name)
		t.Defer(func() { trace.leave(name) })
		time.Sleep(10 * time.Millisecond)
	}
}

// DoOrderingChecks verifies that a Runner executes suites strictly in
// registration order with no overlapping lifetimes, and that the result list
// preserves that order.
func DoOrderingChecks(t *framework.T) {
	t.Run("results are in registration order", func(t *framework.T) {
		trace := &lifecycleTrace{}
		inner := framework.NewRunner(nil, nil, 0)
		names := []string{"first", "second", "third", "fourth"}
		for _, name := range names {
			require.NoError(t, inner.Register(name, probeSuite(trace, name)))
		}

		results := inner.Run(context.Background())

		require.Len(t, results.Suites, len(names))
		for i, name := range names {
			assert.Equal(t, name, results.Suites[i].Name)
			assert.Equal(t, framework.OutcomePassed, results.Suites[i].Outcome)
		}
	})

	t.Run("suite lifetimes never overlap", func(t *framework.T) {
		trace := &lifecycleTrace{}
		inner := framework.NewRunner(nil, nil, 0)
		names := []string{"a", "b", "c"}
		for _, name := range names {
			require.NoError(t, inner.Register(name, probeSuite(trace, name)))
		}

		_ = inner.Run(context.Background())

		events, overlapped := trace.snapshot()
		assert.False(t, overlapped, "two suites were live at the same time")
		assert.Equal(t, []string{"a:start", "a:end", "b:start", "b:end", "c:start", "c:end"}, events)
	})

	t.Run("duplicate names are rejected", func(t *framework.T) {
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("dup", func(*framework.T) {}))
		err := inner.Register("dup", func(*framework.T) {})
		var dupErr framework.DuplicateSuiteError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "dup", dupErr.Name)
		assert.Len(t, inner.SuiteNames(), 1)
	})

	t.Run("a faulting suite does not stop later suites", func(t *framework.T) {
		trace := &lifecycleTrace{}
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("boom", func(*framework.T) {
			panic("synthetic fault")
		}))
		require.NoError(t, inner.Register("after", probeSuite(trace, "after")))

		results := inner.Run(context.Background())

		require.Len(t, results.Suites, 2)
		assert.Equal(t, framework.OutcomeFaulted, results.Suites[0].Outcome)
		assert.Equal(t, framework.OutcomePassed, results.Suites[1].Outcome)
		assert.False(t, results.OK())
		events, _ := trace.snapshot()
		assert.Equal(t, []string{"after:start", "after:end"}, events)
	})
}
