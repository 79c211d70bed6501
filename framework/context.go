package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// T represents a suite, or a case within a suite, while it is executing.
//
// It implements the same basic functionality as Go's *testing.T, but in an
// environment that is outside of the Go test runner, and with some extra
// features such as captured debug logging and attached diagnostics that are
// convenient for our use case. It satisfies the TestingT interface used by
// the testify assert and require packages, so suites can use standard
// assertions.
type T struct {
	state      *suiteState
	id         SuiteID
	isCase     bool
	failed     bool
	skipped    bool
	skipReason string
	errors     []error
}

// suiteState is the mutable record shared by all T instances within one suite.
// It is guarded by a mutex because the Runner may snapshot it from another
// goroutine if the suite exceeds its time bound.
type suiteState struct {
	lock        sync.Mutex
	id          SuiteID
	logger      RunLogger
	filter      Filter
	debugLogger CapturingLogger
	cases       []CaseResult
	suiteErrors []error
	caseFailed  bool
	faulted     bool
	skipped     bool
	skipReason  string
	diagnostics map[string]ldvalue.Value
	deferred    []func()
}

func newSuiteState(id SuiteID, logger RunLogger, filter Filter) *suiteState {
	return &suiteState{id: id, logger: logger, filter: filter}
}

// run invokes the suite function on the calling goroutine, then runs any
// deferred cleanups. It never panics past its own frame.
func (s *suiteState) run(action func(*T)) {
	t := &T{state: s, id: s.id}
	defer s.runDeferred()
	t.run(action)
	s.lock.Lock()
	if t.skipped {
		s.skipped = true
		s.skipReason = t.skipReason
	}
	s.lock.Unlock()
}

func (s *suiteState) runDeferred() {
	s.lock.Lock()
	fns := s.deferred
	s.deferred = nil
	s.lock.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.addSuiteError(fmt.Errorf("panic in deferred cleanup: %+v", r))
				}
			}()
			fns[i]()
		}()
	}
}

func (s *suiteState) addSuiteError(err error) {
	s.lock.Lock()
	s.suiteErrors = append(s.suiteErrors, err)
	s.lock.Unlock()
	s.logger.SuiteError(s.id, err)
}

func (s *suiteState) recordCase(result CaseResult, failed bool) {
	s.lock.Lock()
	s.cases = append(s.cases, result)
	if failed {
		s.caseFailed = true
	}
	s.lock.Unlock()
}

func (s *suiteState) noteFault() {
	s.lock.Lock()
	s.faulted = true
	s.lock.Unlock()
}

// snapshot builds the SuiteResult for everything recorded so far. Safe to call
// from the Runner's goroutine even if the suite goroutine was abandoned.
func (s *suiteState) snapshot() SuiteResult {
	s.lock.Lock()
	defer s.lock.Unlock()
	result := SuiteResult{
		Name:        s.id.String(),
		Errors:      append([]error(nil), s.suiteErrors...),
		Cases:       append([]CaseResult(nil), s.cases...),
		SkipReason:  s.skipReason,
		DebugOutput: s.debugLogger.Output(),
	}
	if len(s.diagnostics) > 0 {
		result.Diagnostics = make(map[string]ldvalue.Value, len(s.diagnostics))
		for k, v := range s.diagnostics {
			result.Diagnostics[k] = v
		}
	}
	switch {
	case s.skipped:
		result.Outcome = OutcomeSkipped
	case s.faulted:
		result.Outcome = OutcomeFaulted
	case s.caseFailed || len(s.suiteErrors) > 0:
		result.Outcome = OutcomeFailed
	default:
		result.Outcome = OutcomePassed
	}
	return result
}

func (t *T) run(action func(*T)) {
	defer func() {
		if r := recover(); r != nil {
			if t.skipped {
				return
			}
			t.failed = true
			var addError error
			if _, ok := r.(*T); ok {
				if len(t.errors) == 0 {
					addError = errors.New("failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic: %+v\n%s", r, string(debug.Stack()))
				if !t.isCase {
					t.state.noteFault()
				}
			}
			if addError != nil {
				t.addError(addError)
			}
		}
	}()

	action(t)
}

func (t *T) addError(err error) {
	t.errors = append(t.errors, err)
	if t.isCase {
		t.state.logger.SuiteError(t.id, err)
	} else {
		t.state.addSuiteError(err)
	}
}

// ID returns the identifier of the suite or case this T belongs to.
func (t *T) ID() SuiteID {
	return t.id
}

// Run executes a case within the suite. The case runs on the same goroutine;
// its failures are recorded against the suite but do not stop it.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)
	t.state.logger.SuiteStarted(id)
	if t.state.filter != nil && !t.state.filter(id) {
		t.state.recordCase(CaseResult{
			Name:       caseName(id),
			Skipped:    true,
			SkipReason: "excluded by filter parameters",
		}, false)
		t.state.logger.SuiteSkipped(id, "excluded by filter parameters")
		return
	}
	c := &T{state: t.state, id: id, isCase: true}
	c.run(action)
	if c.skipped {
		t.state.recordCase(CaseResult{Name: caseName(id), Skipped: true, SkipReason: c.skipReason}, false)
		t.state.logger.SuiteSkipped(id, c.skipReason)
		return
	}
	t.state.recordCase(CaseResult{Name: caseName(id), Errors: c.errors}, c.failed)
	outcome := OutcomePassed
	if c.failed {
		outcome = OutcomeFailed
	}
	t.state.logger.SuiteFinished(id, outcome, nil)
}

// caseName is the ID path minus the leading suite name.
func caseName(id SuiteID) string {
	if len(id.Path) <= 1 {
		return id.String()
	}
	return strings.Join(id.Path[1:], "/")
}

// Errorf records a failure and continues execution, like testing.T.Errorf.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.addError(fmt.Errorf(format, args...))
}

// FailNow records the current T as failed and stops executing it immediately.
// A failure must already have been reported with Errorf, otherwise a generic
// message is recorded.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// Skip stops executing the current suite or case without marking it failed.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Defer registers a cleanup to run after the suite function returns, in
// reverse registration order. Cleanups always complete before the Runner
// starts the next suite.
func (t *T) Defer(fn func()) {
	t.state.lock.Lock()
	t.state.deferred = append(t.state.deferred, fn)
	t.state.lock.Unlock()
}

// AttachDiagnostic stores a structured value that will be carried into the
// suite's result and any written report.
func (t *T) AttachDiagnostic(key string, value ldvalue.Value) {
	t.state.lock.Lock()
	if t.state.diagnostics == nil {
		t.state.diagnostics = make(map[string]ldvalue.Value)
	}
	t.state.diagnostics[key] = value
	t.state.lock.Unlock()
}

// Debug writes a message to the suite's captured debug output.
func (t *T) Debug(message string, args ...interface{}) {
	t.state.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the suite's captured debug output.
func (t *T) DebugLogger() Logger {
	return &t.state.debugLogger
}
