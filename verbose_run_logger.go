package main

import (
	"github.com/maximeroma/seqsuite/framework"

	"github.com/sirupsen/logrus"
)

// verboseRunLogger wraps another RunLogger and mirrors every event to a
// structured log, for -debug-all runs.
type verboseRunLogger struct {
	next framework.RunLogger
	log  *logrus.Logger
}

func newVerboseRunLogger(next framework.RunLogger) *verboseRunLogger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	return &verboseRunLogger{next: next, log: log}
}

func (v *verboseRunLogger) SuiteStarted(id framework.SuiteID) {
	v.log.WithField("id", id.String()).Debug("suite started")
	v.next.SuiteStarted(id)
}

func (v *verboseRunLogger) SuiteError(id framework.SuiteID, err error) {
	v.log.WithField("id", id.String()).WithError(err).Debug("suite error")
	v.next.SuiteError(id, err)
}

func (v *verboseRunLogger) SuiteFinished(id framework.SuiteID, outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	v.log.WithFields(logrus.Fields{
		"id":      id.String(),
		"outcome": outcome.String(),
	}).Debug("suite finished")
	v.next.SuiteFinished(id, outcome, debugOutput)
}

func (v *verboseRunLogger) SuiteSkipped(id framework.SuiteID, reason string) {
	v.log.WithFields(logrus.Fields{
		"id":     id.String(),
		"reason": reason,
	}).Debug("suite skipped")
	v.next.SuiteSkipped(id, reason)
}
