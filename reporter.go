package twconf

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// ReportConfig controls how conformance results are rendered.
type ReportConfig struct {
	PrintSourceValue bool // Show the offending value under each issue
	PrintLinterName  bool // Show (twconf) suffix
	UseColors        bool // Force color output (default: auto-detect)
}

// Reporter handles formatting and outputting validation results
type Reporter struct {
	w                io.Writer
	useColors        bool
	printSourceValue bool
	printLinterName  bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        shouldUseColors(config),
		printSourceValue: config.PrintSourceValue,
		printLinterName:  config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config ReportConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// SortIssues orders issues by field path then index for stable output. Map
// iteration during validation yields issues in arbitrary order.
func SortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Field != issues[j].Pos.Field {
			return issues[i].Pos.Field < issues[j].Pos.Field
		}
		return issues[i].Pos.Index < issues[j].Pos.Index
	})
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file: field: message (linter)
	location := fmt.Sprintf("%s: %s:", issue.Pos.Filename, fieldLabel(issue.Pos))

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printSourceValue && issue.SourceValue != "" {
		fmt.Fprintf(r.w, "\t%s\n", issue.SourceValue)
	}
}

// fieldLabel renders a descriptor position, appending the sequence index
// when the issue points inside a list.
func fieldLabel(pos IssuePos) string {
	if pos.Index >= 0 {
		return fmt.Sprintf("%s[%d]", pos.Field, pos.Index)
	}
	return pos.Field
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "descriptor conforms: 0 issues", r.useColors))
		return
	}

	if errors > 0 && warnings > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(len(issues), "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(len(issues), "issue", "issues"))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
