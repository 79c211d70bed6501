package framework

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRunPlan(t *testing.T) {
	path := writePlanFile(t, `
suites:
  archive:
    skip: true
    skipReason: "environment not available"
  import:
    timeout: 2m
`)

	plan, err := LoadRunPlan(path)
	require.NoError(t, err)
	require.Contains(t, plan.Suites, "archive")
	assert.True(t, plan.Suites["archive"].Skip)
	assert.Equal(t, "environment not available", plan.Suites["archive"].SkipReason)
	assert.Equal(t, "2m", plan.Suites["import"].Timeout)
}

func TestLoadRunPlanMissingFile(t *testing.T) {
	_, err := LoadRunPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyPlanSkipsAndRetimes(t *testing.T) {
	r := NewRunner(nil, nil, 10*time.Millisecond)
	var slowRan bool
	require.NoError(t, r.Register("slow", func(*T) {
		time.Sleep(30 * time.Millisecond)
		slowRan = true
	}))
	require.NoError(t, r.Register("skipped", func(t *T) {
		t.Errorf("should never run")
	}))

	plan := &RunPlan{Suites: map[string]SuitePlan{
		"slow":    {Timeout: "1s"},
		"skipped": {Skip: true},
	}}
	require.NoError(t, r.ApplyPlan(plan))

	results := r.Run(context.Background())

	assert.True(t, slowRan)
	require.Len(t, results.Suites, 2)
	assert.Equal(t, OutcomePassed, results.Suites[0].Outcome)
	assert.Equal(t, OutcomeSkipped, results.Suites[1].Outcome)
	assert.Equal(t, "skipped by run plan", results.Suites[1].SkipReason)
	assert.True(t, results.OK())
}

func TestApplyPlanRejectsUnknownSuite(t *testing.T) {
	r := NewRunner(nil, nil, 0)
	require.NoError(t, r.Register("known", func(*T) {}))

	err := r.ApplyPlan(&RunPlan{Suites: map[string]SuitePlan{"unknown": {Skip: true}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestApplyPlanRejectsBadTimeout(t *testing.T) {
	r := NewRunner(nil, nil, 0)
	require.NoError(t, r.Register("known", func(*T) {}))

	err := r.ApplyPlan(&RunPlan{Suites: map[string]SuitePlan{"known": {Timeout: "soon"}}})
	assert.Error(t, err)
}
