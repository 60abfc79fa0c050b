package lintci

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	fileStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func severityLabel(severity int) string {
	if severity >= severityError {
		return errStyle.Render("error")
	}
	return warnStyle.Render("warning")
}

// printReport writes the human-readable lint report. Files with no
// messages are skipped; the footer is always printed.
func printReport(w io.Writer, r *Report) {
	for _, f := range r.Files {
		if len(f.Messages) == 0 {
			continue
		}

		fmt.Fprintln(w, fileStyle.Render(f.FilePath))
		for _, m := range f.Messages {
			pos := fmt.Sprintf("%d:%d", m.Line, m.Column)
			fmt.Fprintf(w, "  %-7s %s  %s  %s\n",
				dimStyle.Render(pos),
				severityLabel(m.Severity),
				m.Message,
				dimStyle.Render(m.RuleID),
			)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, footer(r.ErrorCount, r.WarningCount))
}

// footer picks exactly one of three summary lines from the error and
// warning totals.
func footer(errs, warns int) string {
	switch {
	case errs > 0:
		return errStyle.Render(fmt.Sprintf(
			"Lint failed: %s, %s.", plural(errs, "error"),
			plural(warns, "warning"),
		))
	case warns > 0:
		return warnStyle.Render(fmt.Sprintf(
			"Lint passed with %s.", plural(warns, "warning"),
		))
	}
	return okStyle.Render("Lint passed. No issues found.")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// describe summarizes the totals for the commit status description.
func describe(errs, warns int) string {
	if errs == 0 && warns == 0 {
		return "no issues found"
	}
	var parts []string
	if errs > 0 {
		parts = append(parts, plural(errs, "error"))
	}
	if warns > 0 {
		parts = append(parts, plural(warns, "warning"))
	}
	return strings.Join(parts, ", ")
}
