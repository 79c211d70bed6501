package framework

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// RunPlan is an optional YAML document with per-suite overrides. It cannot add
// or reorder suites; it can only skip registered ones or tighten their time
// bounds.
//
//	suites:
//	  slow-import:
//	    timeout: 2m
//	  flaky-archive:
//	    skip: true
//	    skipReason: "tracked in issue 41"
type RunPlan struct {
	Suites map[string]SuitePlan `yaml:"suites"`
}

type SuitePlan struct {
	Skip       bool   `yaml:"skip"`
	SkipReason string `yaml:"skipReason"`
	Timeout    string `yaml:"timeout"`
}

// LoadRunPlan reads and parses a run plan file.
func LoadRunPlan(path string) (*RunPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read run plan: %w", err)
	}
	var plan RunPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("could not parse run plan %s: %w", path, err)
	}
	return &plan, nil
}

// ApplyPlan applies a run plan's overrides to the runner. Every suite named in
// the plan must already be registered.
func (r *Runner) ApplyPlan(plan *RunPlan) error {
	for name, sp := range plan.Suites {
		if !r.names[name] {
			return fmt.Errorf("run plan names unknown suite %q", name)
		}
		if sp.Timeout != "" {
			limit, err := time.ParseDuration(sp.Timeout)
			if err != nil {
				return fmt.Errorf("run plan has invalid timeout for suite %q: %w", name, err)
			}
			if err := r.SetSuiteTimeout(name, limit); err != nil {
				return err
			}
		}
		if sp.Skip {
			reason := sp.SkipReason
			if reason == "" {
				reason = "skipped by run plan"
			}
			if err := r.SkipSuite(name, reason); err != nil {
				return err
			}
		}
	}
	return nil
}
