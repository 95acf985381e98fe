package twconf

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks a descriptor for structural conformance and returns every
// violation found. It never mutates the descriptor and never fails early:
// callers get the full picture in one pass.
//
// filename is used for issue positions only; pass the path the descriptor
// was loaded from, or an empty string for in-memory descriptors.
func Validate(d Descriptor, filename string) []Issue {
	if filename == "" {
		filename = "<descriptor>"
	}

	v := &validator{filename: filename}

	v.checkContent(d.Content)
	for _, cat := range d.Theme.Extend.categories() {
		v.checkTokens(cat)
	}
	v.checkPlugins(d.Plugins)

	return v.issues
}

// HasErrors reports whether any issue in the slice is an error. Warnings
// alone do not fail a build (soft gate).
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

type validator struct {
	filename string
	issues   []Issue
}

func (v *validator) add(severity, field string, index int, value, format string, args ...any) {
	v.issues = append(v.issues, Issue{
		FromLinter:  linterName,
		Text:        fmt.Sprintf(format, args...),
		Severity:    severity,
		SourceValue: value,
		Pos: IssuePos{
			Filename: v.filename,
			Field:    field,
			Index:    index,
		},
	})
}

func (v *validator) checkContent(globs []string) {
	if len(globs) == 0 {
		v.add(SeverityError, "content", -1, "", IssueEmptyContent)
		return
	}

	seen := make(map[string]bool)
	for i, pattern := range globs {
		if !doublestar.ValidatePattern(pattern) {
			v.add(SeverityError, "content", i, pattern, IssueInvalidGlob, pattern)
			continue
		}
		// Duplicates are harmless to the build tool, so only warn
		if seen[pattern] {
			v.add(SeverityWarning, "content", i, pattern, IssueDuplicateGlob, pattern)
		}
		seen[pattern] = true
	}
}

func (v *validator) checkTokens(cat tokenCategory) {
	field := "theme.extend." + cat.name

	for name, value := range cat.tokens {
		if name == "" {
			v.add(SeverityError, field, -1, value, IssueEmptyTokenName, cat.name)
			continue
		}
		if value == "" {
			v.add(SeverityError, field+"."+name, -1, value, IssueEmptyTokenValue, name, cat.name)
			continue
		}

		switch cat.name {
		case "colors":
			if !IsColor(value) {
				v.add(SeverityError, field+"."+name, -1, value, IssueInvalidColor, value, name)
			}
		case "boxShadow":
			if !IsBoxShadow(value) {
				v.add(SeverityError, field+"."+name, -1, value, IssueInvalidBoxShadow, value, name)
			}
		case "animation":
			if !IsAnimation(value) {
				v.add(SeverityError, field+"."+name, -1, value, IssueInvalidAnimation, value, name)
			}
		}
	}
}

func (v *validator) checkPlugins(plugins []PluginRef) {
	for i, p := range plugins {
		if p.Name == "" {
			v.add(SeverityError, "plugins", i, "", IssueEmptyPluginName, i)
		}
	}
}
