package twconf

// Issue represents a single conformance violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twconf"
	Text        string   `json:"Text"`        // `invalid CSS color "#FF5D2" for token "primary"`
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceValue string   `json:"SourceValue"` // Offending value for context
	Pos         IssuePos `json:"Pos"`         // Descriptor location
}

// IssuePos specifies the exact location of an issue within the descriptor
type IssuePos struct {
	Filename string `json:"Filename"` // "tailwind.config.yaml"
	Field    string `json:"Field"`    // "theme.extend.colors.primary"
	Index    int    `json:"Index"`    // Position within a sequence, -1 otherwise
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message templates matching validator categories
const (
	IssueEmptyContent     = "content must declare at least one glob pattern"
	IssueInvalidGlob      = "invalid glob pattern %q"
	IssueDuplicateGlob    = "duplicate glob pattern %q"
	IssueEmptyTokenName   = "empty token name in %s"
	IssueEmptyTokenValue  = "token %q in %s has an empty value"
	IssueInvalidColor     = "invalid CSS color %q for token %q"
	IssueInvalidBoxShadow = "invalid box-shadow value %q for token %q"
	IssueInvalidAnimation = "invalid animation shorthand %q for token %q"
	IssueEmptyPluginName  = "plugin reference at index %d has an empty name"
)

// linterName is the suffix printed after each issue, golangci-lint style.
const linterName = "twconf"
