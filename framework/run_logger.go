package framework

// RunLogger receives progress events as the Runner executes suites and their
// cases. Implementations must tolerate being called from the goroutine a suite
// is running on.
type RunLogger interface {
	SuiteStarted(id SuiteID)
	SuiteError(id SuiteID, err error)
	SuiteFinished(id SuiteID, outcome Outcome, debugOutput CapturedOutput)
	SuiteSkipped(id SuiteID, reason string)
}

type nullRunLogger struct{}

func (n nullRunLogger) SuiteStarted(SuiteID)                           {}
func (n nullRunLogger) SuiteError(SuiteID, error)                      {}
func (n nullRunLogger) SuiteFinished(SuiteID, Outcome, CapturedOutput) {}
func (n nullRunLogger) SuiteSkipped(SuiteID, string)                   {}

func NullRunLogger() RunLogger { return nullRunLogger{} }
