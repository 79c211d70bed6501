package checks

import (
	"context"
	"fmt"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// greeter is a stand-in for a collaborator that suites might want to stub.
// Each suite receives its own instance as a parameter, so stubbing it in one
// suite cannot leak into another.
type greeter struct {
	prefix string
	calls  int
}

func (g *greeter) Greet(name string) string {
	g.calls++
	return fmt.Sprintf("%s, %s", g.prefix, name)
}

func greeterSuite(g *greeter, wantPrefix string) framework.SuiteFunc {
	return func(t *framework.T) {
		g.prefix = wantPrefix // this suite's own stubbing
		t.Run("greeting uses this suite's stub", func(t *framework.T) {
			assert.Equal(t, wantPrefix+", world", g.Greet("world"))
		})
		t.AttachDiagnostic("calls", ldvalue.Int(g.calls))
	}
}

// DoFixtureIsolationChecks verifies that suites given their own fixture
// instances observe only their own stubbing, which is the reason suites are
// sequenced in the first place.
func DoFixtureIsolationChecks(t *framework.T) {
	t.Run("per-suite fixtures do not interfere", func(t *framework.T) {
		gA, gB := &greeter{}, &greeter{}
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("hello-suite", greeterSuite(gA, "hello")))
		require.NoError(t, inner.Register("howdy-suite", greeterSuite(gB, "howdy")))

		results := inner.Run(context.Background())

		require.True(t, results.OK())
		assert.Equal(t, "hello", gA.prefix)
		assert.Equal(t, "howdy", gB.prefix)
		assert.Equal(t, 1, gA.calls)
		assert.Equal(t, 1, gB.calls)
	})

	t.Run("diagnostics are carried into results", func(t *framework.T) {
		g := &greeter{}
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("diag", greeterSuite(g, "hi")))

		results := inner.Run(context.Background())

		require.Len(t, results.Suites, 1)
		require.NotNil(t, results.Suites[0].Diagnostics)
		assert.Equal(t, ldvalue.Int(1), results.Suites[0].Diagnostics["calls"])
	})

	t.Run("case failures are recorded without stopping the suite", func(t *framework.T) {
		var reached bool
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("mixed", func(t *framework.T) {
			t.Run("fails", func(t *framework.T) {
				t.Errorf("deliberate mismatch")
			})
			t.Run("still runs", func(t *framework.T) {
				reached = true
			})
		}))

		results := inner.Run(context.Background())

		assert.True(t, reached)
		require.Len(t, results.Suites, 1)
		assert.Equal(t, framework.OutcomeFailed, results.Suites[0].Outcome)
		require.Len(t, results.Suites[0].Cases, 2)
		assert.Len(t, results.Suites[0].Cases[0].Errors, 1)
		assert.Empty(t, results.Suites[0].Cases[1].Errors)
	})
}
