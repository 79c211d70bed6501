package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/maximeroma/seqsuite/checks"
	"github.com/maximeroma/seqsuite/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	var testLogger framework.RunLogger = &ConsoleRunLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	if params.debugAll {
		testLogger = newVerboseRunLogger(testLogger)
	}

	runner := framework.NewRunner(params.filters.AsFilter, testLogger, params.suiteTimeout)
	checks.RegisterAll(runner)

	if params.listSuites {
		for _, name := range runner.SuiteNames() {
			fmt.Println(name)
		}
		return
	}

	if params.planPath != "" {
		plan, err := framework.LoadRunPlan(params.planPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := runner.ApplyPlan(plan); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running suites")

	// Interrupting the run stops it between suites; outcomes already recorded
	// are kept and reported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := runner.Run(ctx)

	fmt.Println()
	printResults(results)

	if params.outputPath != "" {
		if err := framework.WriteReportFile(params.outputPath, results); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if !results.OK() {
		fmt.Println()
		fmt.Printf("To rerun only the suites that did not pass:\n  %s\n", rerunCommand(os.Args[0], results))
		os.Exit(1)
	}
}
