// Package checks contains the bundled verification suites that the seqsuite
// binary runs, and is also an example of how to write suites against the
// framework package.
//
// Harness infrastructure that is not specific to these checks, such as the
// sequential Runner and the T test context, is in the lower-level framework
// package. Each suite here builds its own fixtures and passes them explicitly;
// none of them reads shared package-level state.
package checks
