package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters      framework.RegexFilters
	suiteTimeout time.Duration
	planPath     string
	outputPath   string
	listSuites   bool
	debug        bool
	debugAll     bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select suites to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select suites not to run")
	fs.DurationVar(&c.suiteTimeout, "timeout", framework.DefaultSuiteTimeout, "per-suite completion bound")
	fs.StringVar(&c.planPath, "plan", "", "path of a YAML run plan with per-suite overrides")
	fs.StringVar(&c.outputPath, "output", "", "path to write a JSON run report to")
	fs.BoolVar(&c.listSuites, "list", false, "list the registered suites and exit")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed suites")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all suites")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that reruns only the suites that did not
// pass, so a long run does not have to be repeated to chase a failure.
func rerunCommand(executable string, results framework.RunResult) string {
	var b commandBuilder
	b.add(executable)
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.Name)+"$")
	}
	return b.String()
}
