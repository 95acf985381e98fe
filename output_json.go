package twconf

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version    string         `json:"version"`
	Timestamp  string         `json:"timestamp"`
	Summary    JSONSummary    `json:"summary"`
	Descriptor JSONDescriptor `json:"descriptor"`
	Issues     []JSONIssue    `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// JSONDescriptor contains descriptor shape statistics
type JSONDescriptor struct {
	Path         string `json:"path"`
	ContentGlobs int    `json:"content_globs"`
	ColorTokens  int    `json:"color_tokens"`
	ShadowTokens int    `json:"shadow_tokens"`
	Animations   int    `json:"animations"`
	Plugins      int    `json:"plugins"`
}

// JSONIssue represents a single conformance issue
type JSONIssue struct {
	File     string `json:"file"`
	Field    string `json:"field"`
	Index    int    `json:"index,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Value    string `json:"value,omitempty"` // Offending value, when present
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a CheckResult to the export schema
func buildJSONOutput(result CheckResult) JSONOutput {
	SortIssues(result.Issues)

	issues := make([]JSONIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, JSONIssue{
			File:     issue.Pos.Filename,
			Field:    issue.Pos.Field,
			Index:    issue.Pos.Index,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Value:    issue.SourceValue,
		})
	}

	ext := result.Descriptor.Theme.Extend

	return JSONOutput{
		Version:   "1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      result.ErrorCount(),
			Warnings:    result.WarningCount(),
		},
		Descriptor: JSONDescriptor{
			Path:         result.Path,
			ContentGlobs: len(result.Descriptor.Content),
			ColorTokens:  len(ext.Colors),
			ShadowTokens: len(ext.BoxShadow),
			Animations:   len(ext.Animation),
			Plugins:      len(result.Descriptor.Plugins),
		},
		Issues: issues,
	}
}
