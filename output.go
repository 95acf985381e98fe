package twconf

import (
	"fmt"
	"io"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows descriptor statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues plus descriptor statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// CheckResult bundles a validated descriptor with its issues for reporting.
type CheckResult struct {
	Path       string
	Descriptor Descriptor
	Issues     []Issue
}

// ErrorCount returns the number of error-severity issues.
func (r CheckResult) ErrorCount() int {
	var n int
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity issues.
func (r CheckResult) WarningCount() int {
	var n int
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// DetermineOutputFormat selects the appropriate output format based on flags.
// Invalid or empty format flags fall back to issues-only, following
// golangci-lint's UX: clean, fast, consistent everywhere.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result CheckResult, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputSummary:
		reporter := NewReporter(w, config)
		printStatistics(w, reporter, result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)
		printStatistics(w, reporter, result)

	case OutputJSON:
		return WriteJSON(w, result)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)
	}

	return nil
}

// printStatistics renders descriptor shape statistics: what the build tool
// will see when it reads the configuration.
func printStatistics(w io.Writer, r *Reporter, result CheckResult) {
	ext := result.Descriptor.Theme.Extend

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, RenderStyle(StyleCyan, "Descriptor", r.UseColors()))
	fmt.Fprintf(w, "  Source:          %s\n", result.Path)
	fmt.Fprintf(w, "  Content globs:   %d\n", len(result.Descriptor.Content))
	fmt.Fprintf(w, "  Color tokens:    %d\n", len(ext.Colors))
	fmt.Fprintf(w, "  Shadow tokens:   %d\n", len(ext.BoxShadow))
	fmt.Fprintf(w, "  Animations:      %d\n", len(ext.Animation))
	fmt.Fprintf(w, "  Plugins:         %d\n", len(result.Descriptor.Plugins))
}
