package framework

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SuiteFunc is a suite body: a named, parameterless unit of work that runs its
// cases against the given T and returns (or panics) exactly once when done.
// Any fixtures the suite needs should be bound into its closure rather than
// read from shared globals.
type SuiteFunc func(*T)

// DefaultSuiteTimeout is the per-suite completion bound used when no other
// timeout is configured.
const DefaultSuiteTimeout = time.Second * 30

type registeredSuite struct {
	name string
	fn   SuiteFunc
}

// Runner executes registered suites strictly one at a time, in registration
// order. It is stateless between runs: each call to Run produces an
// independent RunResult.
type Runner struct {
	filter         Filter
	logger         RunLogger
	defaultTimeout time.Duration
	suites         []registeredSuite
	names          map[string]bool
	timeouts       map[string]time.Duration
	skips          map[string]string
}

// NewRunner creates a Runner. The filter, if non-nil, can exclude suites and
// cases by ID; excluded suites are recorded as skipped. A nil logger disables
// progress reporting. A non-positive defaultTimeout selects
// DefaultSuiteTimeout.
func NewRunner(filter Filter, logger RunLogger, defaultTimeout time.Duration) *Runner {
	if logger == nil {
		logger = NullRunLogger()
	}
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultSuiteTimeout
	}
	return &Runner{
		filter:         filter,
		logger:         logger,
		defaultTimeout: defaultTimeout,
		names:          make(map[string]bool),
		timeouts:       make(map[string]time.Duration),
		skips:          make(map[string]string),
	}
}

// Register appends a suite to the execution order. Registering the same name
// twice fails with DuplicateSuiteError and leaves the order unchanged.
func (r *Runner) Register(name string, fn SuiteFunc) error {
	if name == "" {
		return errors.New("suite name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("suite %q has no function", name)
	}
	if r.names[name] {
		return DuplicateSuiteError{Name: name}
	}
	r.names[name] = true
	r.suites = append(r.suites, registeredSuite{name: name, fn: fn})
	return nil
}

// MustRegister is Register for static suite lists assembled at startup, where
// a duplicate name is a programming error.
func (r *Runner) MustRegister(name string, fn SuiteFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// SuiteNames returns the registered suite names in execution order.
func (r *Runner) SuiteNames() []string {
	names := make([]string, 0, len(r.suites))
	for _, s := range r.suites {
		names = append(names, s.name)
	}
	return names
}

// SetSuiteTimeout overrides the completion bound for one suite.
func (r *Runner) SetSuiteTimeout(name string, limit time.Duration) error {
	if !r.names[name] {
		return fmt.Errorf("no suite named %q is registered", name)
	}
	if limit <= 0 {
		return fmt.Errorf("timeout for suite %q must be positive", name)
	}
	r.timeouts[name] = limit
	return nil
}

// SkipSuite marks a suite to be recorded as skipped instead of run.
func (r *Runner) SkipSuite(name string, reason string) error {
	if !r.names[name] {
		return fmt.Errorf("no suite named %q is registered", name)
	}
	r.skips[name] = reason
	return nil
}

// Run executes every registered suite in order and returns the complete
// RunResult, one entry per suite. Suites never overlap: each suite's
// completion, including its deferred cleanups, is observed before the next is
// invoked. Case failures, suite panics, and timeouts are recorded in the
// result; nothing propagates out of Run.
//
// Cancelling ctx aborts the run between suites, never mid-suite: outcomes
// already recorded are preserved and the remaining suites are recorded as
// canceled. A suite that exceeds its time bound is recorded as timed out and
// its goroutine is abandoned; anything it reports afterward is discarded.
func (r *Runner) Run(ctx context.Context) RunResult {
	var result RunResult
	record := func(sr SuiteResult) {
		result.Suites = append(result.Suites, sr)
		switch sr.Outcome {
		case OutcomePassed, OutcomeSkipped:
		default:
			result.Failures = append(result.Failures, sr)
		}
	}

	canceled := false
	for _, s := range r.suites {
		id := SuiteID{Path: []string{s.name}}
		if !canceled && ctx.Err() != nil {
			canceled = true
		}
		if canceled {
			r.logger.SuiteSkipped(id, "run canceled")
			record(SuiteResult{Name: s.name, Outcome: OutcomeCanceled, SkipReason: "run canceled"})
			continue
		}
		r.logger.SuiteStarted(id)
		if reason, ok := r.skips[s.name]; ok {
			r.logger.SuiteSkipped(id, reason)
			record(SuiteResult{Name: s.name, Outcome: OutcomeSkipped, SkipReason: reason})
			continue
		}
		if r.filter != nil && !r.filter(id) {
			r.logger.SuiteSkipped(id, "excluded by filter parameters")
			record(SuiteResult{Name: s.name, Outcome: OutcomeSkipped, SkipReason: "excluded by filter parameters"})
			continue
		}
		record(r.runSuite(id, s))
	}
	return result
}

func (r *Runner) runSuite(id SuiteID, s registeredSuite) SuiteResult {
	limit := r.defaultTimeout
	if override, ok := r.timeouts[s.name]; ok {
		limit = override
	}

	state := newSuiteState(id, r.logger, r.filter)
	done := make(chan struct{})
	start := time.Now()
	go func() {
		defer close(done)
		state.run(s.fn)
	}()

	timer := time.NewTimer(limit)
	defer timer.Stop()
	timedOut := false
	select {
	case <-done:
	case <-timer.C:
		timedOut = true
	}
	elapsed := time.Since(start)

	if timedOut {
		// The suite goroutine cannot be killed; it is abandoned and its
		// eventual completion, if any, goes unobserved.
		err := TimeoutError{Name: s.name, Limit: limit}
		r.logger.SuiteError(id, err)
		sr := state.snapshot()
		sr.Outcome = OutcomeTimedOut
		sr.Errors = append(sr.Errors, err)
		sr.Elapsed = elapsed
		r.logger.SuiteFinished(id, sr.Outcome, sr.DebugOutput)
		return sr
	}

	sr := state.snapshot()
	sr.Elapsed = elapsed
	if sr.Outcome == OutcomeSkipped {
		r.logger.SuiteSkipped(id, sr.SkipReason)
	} else {
		r.logger.SuiteFinished(id, sr.Outcome, sr.DebugOutput)
	}
	return sr
}
