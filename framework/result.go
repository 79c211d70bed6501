package framework

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Outcome classifies how a suite (or the run as a whole, per suite) ended.
type Outcome int

const (
	// OutcomePassed means every case in the suite passed.
	OutcomePassed Outcome = iota
	// OutcomeFailed means one or more cases reported a failure.
	OutcomeFailed
	// OutcomeFaulted means the suite panicked outside of normal failure reporting.
	OutcomeFaulted
	// OutcomeTimedOut means the suite never signaled completion within its time bound.
	OutcomeTimedOut
	// OutcomeSkipped means the suite was not run, either by its own request or
	// because it was excluded by filter or plan parameters.
	OutcomeSkipped
	// OutcomeCanceled means the run was aborted before this suite was started.
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeFaulted:
		return "faulted"
	case OutcomeTimedOut:
		return "timed out"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// SuiteID identifies a suite, or a case within a suite, as a path of names.
type SuiteID struct {
	Path []string
}

func (id SuiteID) String() string {
	return strings.Join(id.Path, "/")
}

// Plus returns an ID with one more path component appended.
func (id SuiteID) Plus(name string) SuiteID {
	return SuiteID{Path: append(append([]string(nil), id.Path...), name)}
}

// CaseResult is the recorded outcome of a single case within a suite.
type CaseResult struct {
	Name       string
	Errors     []error
	Skipped    bool
	SkipReason string
}

// SuiteResult is the recorded outcome of one suite.
type SuiteResult struct {
	Name        string
	Outcome     Outcome
	SkipReason  string
	Errors      []error
	Cases       []CaseResult
	Elapsed     time.Duration
	Diagnostics map[string]ldvalue.Value
	DebugOutput CapturedOutput
}

// RunResult is the ordered record of outcomes for one invocation of the full
// suite list. Suites appears in execution order, which is registration order.
type RunResult struct {
	Suites   []SuiteResult
	Failures []SuiteResult
}

// OK is true if no suite had a non-passing outcome (skips do not count against
// the run).
func (r RunResult) OK() bool {
	return len(r.Failures) == 0
}

// SuiteFailure associates an error with the suite it came from, for reporting.
type SuiteFailure struct {
	ID  SuiteID
	Err error
}

func (f SuiteFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// DuplicateSuiteError is returned by Runner.Register when a suite name is
// already taken. It is fatal to the Register call only; the runner's existing
// registration order is unchanged.
type DuplicateSuiteError struct {
	Name string
}

func (e DuplicateSuiteError) Error() string {
	return fmt.Sprintf("a suite named %q is already registered", e.Name)
}

// TimeoutError is recorded as a suite's error when it never signals completion
// within its time bound.
type TimeoutError struct {
	Name  string
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("suite %q did not complete within %s", e.Name, e.Limit)
}
