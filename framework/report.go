package framework

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type reportDocument struct {
	OK     bool          `json:"ok"`
	Suites []reportSuite `json:"suites"`
}

type reportSuite struct {
	Name        string                   `json:"name"`
	Outcome     string                   `json:"outcome"`
	SkipReason  string                   `json:"skipReason,omitempty"`
	ElapsedMS   int64                    `json:"elapsedMs"`
	Errors      []string                 `json:"errors,omitempty"`
	Cases       []reportCase             `json:"cases,omitempty"`
	Diagnostics map[string]ldvalue.Value `json:"diagnostics,omitempty"`
}

type reportCase struct {
	Name       string   `json:"name"`
	Skipped    bool     `json:"skipped,omitempty"`
	SkipReason string   `json:"skipReason,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// WriteReport writes the run result as indented JSON, suitable for archiving
// or for downstream tooling.
func WriteReport(dest io.Writer, result RunResult) error {
	doc := reportDocument{OK: result.OK()}
	for _, s := range result.Suites {
		rs := reportSuite{
			Name:        s.Name,
			Outcome:     s.Outcome.String(),
			SkipReason:  s.SkipReason,
			ElapsedMS:   s.Elapsed.Milliseconds(),
			Errors:      errorStrings(s.Errors),
			Diagnostics: s.Diagnostics,
		}
		for _, c := range s.Cases {
			rs.Cases = append(rs.Cases, reportCase{
				Name:       c.Name,
				Skipped:    c.Skipped,
				SkipReason: c.SkipReason,
				Errors:     errorStrings(c.Errors),
			})
		}
		doc.Suites = append(doc.Suites, rs)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode run report: %w", err)
	}
	data = append(data, '\n')
	_, err = dest.Write(data)
	return err
}

// WriteReportFile writes the run result as JSON to the given path.
func WriteReportFile(path string, result RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create report file: %w", err)
	}
	defer f.Close()
	return WriteReport(f, result)
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	ss := make([]string, 0, len(errs))
	for _, e := range errs {
		ss = append(ss, e.Error())
	}
	return ss
}
