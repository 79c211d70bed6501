package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOf(path ...string) SuiteID {
	return SuiteID{Path: path}
}

func TestRegexFiltersDefaultToRunningEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(idOf("anything")))
	assert.True(t, filters.AsFilter(idOf("anything", "case")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^ordering"))

	assert.True(t, filters.AsFilter(idOf("ordering")))
	assert.True(t, filters.AsFilter(idOf("ordering", "basic")))
	assert.False(t, filters.AsFilter(idOf("timeouts")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("slow"))

	assert.True(t, filters.AsFilter(idOf("quick")))
	assert.False(t, filters.AsFilter(idOf("slow")))
	assert.False(t, filters.AsFilter(idOf("suite", "slow case")))
}

func TestRegexFiltersCombined(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^http"))
	require.NoError(t, filters.MustNotMatch.Set("redirect"))

	assert.True(t, filters.AsFilter(idOf("http basics")))
	assert.False(t, filters.AsFilter(idOf("http redirect")))
	assert.False(t, filters.AsFilter(idOf("ordering")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestRegexListString(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b"))
	assert.Equal(t, `"a" or "b"`, list.String())
}
