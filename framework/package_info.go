// Package framework contains the suite-sequencing harness.
//
// The general model is:
//
// 1. A Runner holds an ordered list of named suites. Each suite is a plain
// function that receives a T, registers and runs its cases, and returns (or
// panics) when it is done. The Runner invokes suites strictly one at a time:
// suite N's completion (including its deferred cleanups and any asynchronous
// work it chooses to wait for) is observed before suite N+1 is started.
//
// 2. There is a general notion of a test context (T) which is similar to Go's
// *testing.T, allowing pieces of test logic to be associated with an identifier
// and to accumulate success/failure results outside of the Go test runner.
//
// 3. Every suite produces exactly one SuiteResult; the Runner always produces a
// complete RunResult with one entry per registered suite, in registration
// order, no matter how individual suites fail.
//
// The domain-specific code that knows what is being checked is responsible for
// providing the suite functions and any fixtures they need; fixtures are passed
// explicitly through suite closures rather than read from shared globals, so
// that suites cannot interfere with each other's environment.
package framework
