package checks

import (
	"github.com/maximeroma/seqsuite/framework"
)

// RegisterAll registers the bundled suites in their fixed order.
func RegisterAll(r *framework.Runner) {
	r.MustRegister("execution order", DoOrderingChecks)
	r.MustRegister("fixture isolation", DoFixtureIsolationChecks)
	r.MustRegister("asynchronous completion", DoAsyncCompletionChecks)
	r.MustRegister("timeout recovery", DoTimeoutChecks)
	r.MustRegister("HTTP fixtures", DoHTTPFixtureChecks)
}
