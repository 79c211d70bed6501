package framework

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// runOneSuite is a shorthand for running a single suite function to completion.
func runOneSuite(t *testing.T, fn SuiteFunc) SuiteResult {
	r := NewRunner(nil, nil, 0)
	require.NoError(t, r.Register("suite", fn))
	results := r.Run(context.Background())
	require.Len(t, results.Suites, 1)
	return results.Suites[0]
}

func TestErrorfRecordsFailureAndContinues(t *testing.T) {
	var afterError bool
	result := runOneSuite(t, func(t *T) {
		t.Run("case", func(t *T) {
			t.Errorf("first problem")
			t.Errorf("second problem")
			afterError = true
		})
	})

	assert.True(t, afterError)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	require.Len(t, result.Cases, 1)
	require.Len(t, result.Cases[0].Errors, 2)
	assert.Equal(t, "first problem", result.Cases[0].Errors[0].Error())
}

func TestFailNowStopsTheCaseOnly(t *testing.T) {
	var afterFailNow, nextCaseRan bool
	result := runOneSuite(t, func(t *T) {
		t.Run("stops early", func(t *T) {
			t.Errorf("fatal problem")
			t.FailNow()
			afterFailNow = true
		})
		t.Run("still runs", func(*T) {
			nextCaseRan = true
		})
	})

	assert.False(t, afterFailNow)
	assert.True(t, nextCaseRan)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	require.Len(t, result.Cases, 2)
	assert.Len(t, result.Cases[0].Errors, 1)
	assert.Empty(t, result.Cases[1].Errors)
}

func TestFailNowWithoutMessageGetsGenericError(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.Run("silent failure", func(t *T) {
			t.FailNow()
		})
	})

	assert.Equal(t, OutcomeFailed, result.Outcome)
	require.Len(t, result.Cases, 1)
	require.Len(t, result.Cases[0].Errors, 1)
	assert.Equal(t, "failed with no failure message", result.Cases[0].Errors[0].Error())
}

func TestSkipLeavesCaseUnfailed(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.Run("skipped case", func(t *T) {
			t.SkipWithReason("not applicable here")
		})
		t.Run("normal case", func(*T) {})
	})

	assert.Equal(t, OutcomePassed, result.Outcome)
	require.Len(t, result.Cases, 2)
	assert.True(t, result.Cases[0].Skipped)
	assert.Equal(t, "not applicable here", result.Cases[0].SkipReason)
	assert.False(t, result.Cases[1].Skipped)
}

func TestSuiteLevelSkip(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.SkipWithReason("missing external dependency")
	})

	assert.Equal(t, OutcomeSkipped, result.Outcome)
	assert.Equal(t, "missing external dependency", result.SkipReason)
}

func TestCasePanicFailsTheCaseNotTheSuiteState(t *testing.T) {
	var nextCaseRan bool
	result := runOneSuite(t, func(t *T) {
		t.Run("panics", func(*T) {
			panic("case blew up")
		})
		t.Run("still runs", func(*T) {
			nextCaseRan = true
		})
	})

	assert.True(t, nextCaseRan)
	assert.Equal(t, OutcomeFailed, result.Outcome, "a panicking case fails the suite")
	require.Len(t, result.Cases, 2)
	require.Len(t, result.Cases[0].Errors, 1)
	assert.Contains(t, result.Cases[0].Errors[0].Error(), "case blew up")
}

func TestDeferRunsInReverseOrderEvenAfterPanic(t *testing.T) {
	var order []string
	result := runOneSuite(t, func(t *T) {
		t.Defer(func() { order = append(order, "second") })
		t.Defer(func() { order = append(order, "first") })
		panic("suite body fault")
	})

	assert.Equal(t, OutcomeFaulted, result.Outcome)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPanicInDeferredCleanupIsRecorded(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.Defer(func() { panic("cleanup fault") })
	})

	assert.Equal(t, OutcomeFailed, result.Outcome)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), "cleanup fault")
}

func TestAttachDiagnosticAppearsInResult(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.AttachDiagnostic("requests", ldvalue.Int(3))
		t.AttachDiagnostic("endpoint", ldvalue.String("/probe"))
	})

	require.NotNil(t, result.Diagnostics)
	assert.Equal(t, ldvalue.Int(3), result.Diagnostics["requests"])
	assert.Equal(t, ldvalue.String("/probe"), result.Diagnostics["endpoint"])
}

func TestDebugOutputIsCaptured(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.Debug("connected to %s", "fixture")
		t.DebugLogger().Printf("second message")
	})

	require.Len(t, result.DebugOutput, 2)
	assert.Equal(t, "connected to fixture", result.DebugOutput[0].Message)
	assert.Equal(t, "second message", result.DebugOutput[1].Message)
}

func TestFilterExcludesCasesWithinSuite(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("slow$"))

	var ran []string
	r := NewRunner(filters.AsFilter, nil, 0)
	require.NoError(t, r.Register("suite", func(t *T) {
		t.Run("fast", func(*T) { ran = append(ran, "fast") })
		t.Run("slow", func(*T) { ran = append(ran, "slow") })
	}))

	results := r.Run(context.Background())

	assert.Equal(t, []string{"fast"}, ran)
	require.Len(t, results.Suites, 1)
	require.Len(t, results.Suites[0].Cases, 2)
	assert.True(t, results.Suites[0].Cases[1].Skipped)
}

func TestNestedCasesUseSlashSeparatedNames(t *testing.T) {
	result := runOneSuite(t, func(t *T) {
		t.Run("outer", func(t *T) {
			t.Run("inner", func(t *T) {
				t.Errorf("inner failure")
			})
		})
	})

	assert.Equal(t, OutcomeFailed, result.Outcome)
	var names []string
	for _, c := range result.Cases {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "outer/inner")
}
