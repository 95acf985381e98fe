package twconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_StockDescriptorIsClean(t *testing.T) {
	issues := Validate(Default(), "tailwind.config.yaml")
	assert.Empty(t, issues)
}

func TestValidate_EmptyContent(t *testing.T) {
	d := Default()
	d.Content = nil

	issues := Validate(d, "")

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "content", issues[0].Pos.Field)
	assert.Equal(t, "<descriptor>", issues[0].Pos.Filename)
	assert.Equal(t, IssueEmptyContent, issues[0].Text)
}

func TestValidate_InvalidGlob(t *testing.T) {
	d := Default()
	d.Content = []string{"./src/**/*.[js"}

	issues := Validate(d, "x.yaml")

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, 0, issues[0].Pos.Index)
	assert.Contains(t, issues[0].Text, "invalid glob pattern")
}

func TestValidate_DuplicateGlobIsWarning(t *testing.T) {
	d := Default()
	d.Content = []string{"./index.html", "./index.html"}

	issues := Validate(d, "x.yaml")

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Pos.Index)
	assert.False(t, HasErrors(issues), "duplicates are harmless, not errors")
}

func TestValidate_TokenValues(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Descriptor)
		wantField string
		wantText  string
	}{
		{
			name: "truncated hex color",
			mutate: func(d *Descriptor) {
				d.Theme.Extend.Colors["primary"] = "#FF5D2"
			},
			wantField: "theme.extend.colors.primary",
			wantText:  "invalid CSS color",
		},
		{
			name: "malformed box shadow",
			mutate: func(d *Descriptor) {
				d.Theme.Extend.BoxShadow["glow"] = "15px glow"
			},
			wantField: "theme.extend.boxShadow.glow",
			wantText:  "invalid box-shadow value",
		},
		{
			name: "animation without duration",
			mutate: func(d *Descriptor) {
				d.Theme.Extend.Animation["pulse-slow"] = "pulse infinite"
			},
			wantField: "theme.extend.animation.pulse-slow",
			wantText:  "invalid animation shorthand",
		},
		{
			name: "empty token value",
			mutate: func(d *Descriptor) {
				d.Theme.Extend.Colors["primary"] = ""
			},
			wantField: "theme.extend.colors.primary",
			wantText:  "has an empty value",
		},
		{
			name: "empty token name",
			mutate: func(d *Descriptor) {
				d.Theme.Extend.Colors[""] = "#FFFFFF"
			},
			wantField: "theme.extend.colors",
			wantText:  "empty token name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mutate(&d)

			issues := Validate(d, "x.yaml")

			require.Len(t, issues, 1)
			assert.Equal(t, SeverityError, issues[0].Severity)
			assert.Equal(t, tt.wantField, issues[0].Pos.Field)
			assert.Contains(t, issues[0].Text, tt.wantText)
			assert.True(t, HasErrors(issues))
		})
	}
}

func TestValidate_PluginReferences(t *testing.T) {
	d := Default()
	d.Plugins = []PluginRef{{Name: "typography"}, {Name: ""}}

	issues := Validate(d, "x.yaml")

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "plugins", issues[0].Pos.Field)
	assert.Equal(t, 1, issues[0].Pos.Index)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	d := Default()
	before := d.Clone()

	Validate(d, "x.yaml")

	assert.Equal(t, before, d)
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	d := Default()
	d.Theme.Extend.Colors["primary"] = "nope"
	d.Theme.Extend.BoxShadow["glow"] = "glowy"
	d.Theme.Extend.Animation["pulse-slow"] = "???"

	issues := Validate(d, "x.yaml")

	// One pass reports everything, no early exit
	assert.Len(t, issues, 3)
}
