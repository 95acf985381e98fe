package twconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExtendLayersOverDefaults(t *testing.T) {
	theme := Resolve(Default())

	// Extended tokens are present
	v, ok := theme.Color("primary")
	require.True(t, ok)
	assert.Equal(t, "#FF5D2B", v)

	// Built-in tokens survive the merge
	v, ok = theme.Color("white")
	require.True(t, ok)
	assert.Equal(t, "#FFFFFF", v)

	v, ok = theme.Animation("pulse")
	require.True(t, ok)
	assert.Equal(t, "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite", v)

	v, ok = theme.BoxShadow("glow")
	require.True(t, ok)
	assert.Equal(t, "0 0 15px rgba(255, 93, 43, 0.3)", v)
}

func TestResolve_ExtendWinsOnCollision(t *testing.T) {
	d := Default()
	d.Theme.Extend.Colors["white"] = "#FAFAFA"
	d.Theme.Extend.BoxShadow["none"] = "0 0 1px #000"

	theme := Resolve(d)

	v, _ := theme.Color("white")
	assert.Equal(t, "#FAFAFA", v)

	v, _ = theme.BoxShadow("none")
	assert.Equal(t, "0 0 1px #000", v)
}

func TestResolve_DoesNotMutateBaseTokens(t *testing.T) {
	d := Default()
	d.Theme.Extend.Colors["black"] = "#111111"
	Resolve(d)

	// A second resolve of an untouched descriptor sees the original base
	theme := Resolve(Default())
	v, _ := theme.Color("black")
	assert.Equal(t, "#000000", v)
}

func TestRule_StockScenario(t *testing.T) {
	theme := Resolve(Default())

	// The token-to-value mapping is the authoritative source of truth:
	// shadow-glow in scanned markup resolves to exactly this rule.
	rule, err := theme.Rule("shadow-glow")
	require.NoError(t, err)
	assert.Equal(t, "box-shadow: 0 0 15px rgba(255, 93, 43, 0.3);", rule)
}

func TestRule_Prefixes(t *testing.T) {
	theme := Resolve(Default())

	tests := []struct {
		class string
		want  string
	}{
		{"bg-primary", "background-color: #FF5D2B;"},
		{"text-secondary", "color: #FF5D2B;"},
		{"border-background", "border-color: #171717;"},
		{"bg-background", "background-color: #171717;"},
		{"animate-pulse-slow", "animation: pulse 3s cubic-bezier(0.4, 0, 0.6, 1) infinite;"},
		{"animate-spin", "animation: spin 1s linear infinite;"},
		{"shadow-none", "box-shadow: none;"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			rule, err := theme.Rule(tt.class)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule)
		})
	}
}

func TestRule_Unknown(t *testing.T) {
	theme := Resolve(Default())

	_, err := theme.Rule("shadow-halo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no boxShadow token")

	_, err = theme.Rule("grid-cols-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match a known utility prefix")
}

func TestTokenNames_Sorted(t *testing.T) {
	theme := Resolve(Default())

	names := theme.TokenNames("colors")
	assert.Contains(t, names, "primary")
	assert.Contains(t, names, "white")
	assert.IsIncreasing(t, names)

	assert.Nil(t, theme.TokenNames("spacing"))
}
