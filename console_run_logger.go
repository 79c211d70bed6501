package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/fatih/color"
)

var (
	failedColor   = color.New(color.FgRed, color.Bold)
	timedOutColor = color.New(color.FgYellow, color.Bold)
	passedColor   = color.New(color.FgGreen)
)

type ConsoleRunLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleRunLogger) SuiteStarted(id framework.SuiteID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleRunLogger) SuiteError(id framework.SuiteID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleRunLogger) SuiteFinished(id framework.SuiteID, outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	switch outcome {
	case framework.OutcomeFailed, framework.OutcomeFaulted:
		failedColor.Printf("  FAILED: %s\n", id)
	case framework.OutcomeTimedOut:
		timedOutColor.Printf("  TIMED OUT: %s\n", id)
	}
	failed := outcome != framework.OutcomePassed
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleRunLogger) SuiteSkipped(id framework.SuiteID, reason string) {
	if reason == "" {
		fmt.Printf("  SKIPPED: %s\n", id)
	} else {
		fmt.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func printResults(results framework.RunResult) {
	passed, skipped := 0, 0
	for _, s := range results.Suites {
		switch s.Outcome {
		case framework.OutcomePassed:
			passed++
		case framework.OutcomeSkipped:
			skipped++
		}
	}
	if results.OK() {
		passedColor.Printf("All suites passed (%d passed, %d skipped)\n", passed, skipped)
		return
	}
	failedColor.Printf("Run failed (%d passed, %d skipped, %d not passing)\n",
		passed, skipped, len(results.Failures))
	for _, f := range results.Failures {
		fmt.Printf("  %s: %s\n", f.Name, f.Outcome)
		for _, err := range f.Errors {
			fmt.Printf("    %s\n", err)
		}
		for _, c := range f.Cases {
			if len(c.Errors) > 0 {
				fmt.Printf("    %s/%s:\n", f.Name, c.Name)
				for _, err := range c.Errors {
					fmt.Printf("      %s\n", err)
				}
			}
		}
	}
}
