package lintci

import (
	"bytes"
	"strings"
	"testing"
)

func TestFooter(t *testing.T) {
	tests := []struct {
		errs, warns int
		want        string
	}{
		{0, 0, "Lint passed. No issues found."},
		{0, 1, "Lint passed with 1 warning."},
		{0, 3, "Lint passed with 3 warnings."},
		{1, 0, "Lint failed: 1 error, 0 warnings."},
		{2, 5, "Lint failed: 2 errors, 5 warnings."},
	}

	for _, test := range tests {
		got := footer(test.errs, test.warns)
		if !strings.Contains(got, test.want) {
			t.Errorf(
				"footer(%d, %d) = %q, want %q",
				test.errs, test.warns, got, test.want,
			)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		errs, warns int
		want        string
	}{
		{0, 0, "no issues found"},
		{0, 2, "2 warnings"},
		{1, 0, "1 error"},
		{3, 1, "3 errors, 1 warning"},
	}

	for _, test := range tests {
		got := describe(test.errs, test.warns)
		if got != test.want {
			t.Errorf(
				"describe(%d, %d) = %q, want %q",
				test.errs, test.warns, got, test.want,
			)
		}
	}
}

func TestPrintReport(t *testing.T) {
	r := &Report{
		Files: []FileResult{{
			FilePath:   "test/app.js",
			ErrorCount: 1,
			Messages: []Message{{
				RuleID:   "no-unused-vars",
				Severity: severityError,
				Message:  "'x' is defined but never used.",
				Line:     3,
				Column:   7,
			}},
		}, {
			FilePath: "test/clean.js", // no messages, skipped
		}},
		ErrorCount: 1,
	}

	out := new(bytes.Buffer)
	printReport(out, r)
	got := out.String()

	for _, want := range []string{
		"test/app.js",
		"3:7",
		"'x' is defined but never used.",
		"no-unused-vars",
		"Lint failed: 1 error, 0 warnings.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report output missing %q; got:\n%s", want, got)
		}
	}

	if strings.Contains(got, "test/clean.js") {
		t.Errorf("report output mentions clean file; got:\n%s", got)
	}
}
