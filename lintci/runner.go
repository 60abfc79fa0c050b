package lintci

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

// Message severities in the lint engine's JSON report.
const (
	severityWarning = 1
	severityError   = 2
)

// Message is a single issue reported by the lint engine.
type Message struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// FileResult is one file's section of the lint engine's JSON report.
type FileResult struct {
	FilePath     string    `json:"filePath"`
	Messages     []Message `json:"messages"`
	ErrorCount   int       `json:"errorCount"`
	WarningCount int       `json:"warningCount"`
}

// Report is a parsed lint report with totals tallied across files.
type Report struct {
	Files []FileResult

	ErrorCount   int
	WarningCount int
}

func parseReport(bs []byte) (*Report, error) {
	var files []FileResult
	if err := json.Unmarshal(bs, &files); err != nil {
		return nil, fmt.Errorf("parse lint report: %w", err)
	}

	r := &Report{Files: files}
	for _, f := range files {
		r.ErrorCount += f.ErrorCount
		r.WarningCount += f.WarningCount
	}
	return r, nil
}

// lintRunner abstracts the lint engine for testability.
type lintRunner interface {
	run(dir string) (*Report, error)
}

// execLintRunner runs the lint engine as a subprocess.
type execLintRunner struct {
	command []string
}

func (r *execLintRunner) run(dir string) (*Report, error) {
	if len(r.command) == 0 {
		return nil, fmt.Errorf("no lint command configured")
	}

	args := append(append([]string(nil), r.command[1:]...), dir)
	cmd := exec.Command(r.command[0], args...)
	out, err := cmd.Output()

	// Lint engines exit non-zero when they find issues. A report on
	// stdout wins over the exit code; fail only when there is nothing
	// to parse.
	if err != nil && len(out) == 0 {
		return nil, fmt.Errorf("run lint engine: %w", err)
	}

	return parseReport(out)
}
