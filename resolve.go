package twconf

import (
	"fmt"
	"sort"
	"strings"
)

// ResolvedTheme is the descriptor's theme.extend layered over the built-in
// token set. It is the authoritative token-to-value mapping the build tool
// generates rules from.
type ResolvedTheme struct {
	colors    map[string]string
	boxShadow map[string]string
	animation map[string]string
}

// Resolve layers d's theme extensions over the built-in defaults. The merge
// is shallow and per category: an extend entry wins on name collision,
// untouched defaults remain available.
func Resolve(d Descriptor) ResolvedTheme {
	return ResolvedTheme{
		colors:    layer(baseColors, d.Theme.Extend.Colors),
		boxShadow: layer(baseShadows, d.Theme.Extend.BoxShadow),
		animation: layer(baseAnimations, d.Theme.Extend.Animation),
	}
}

func layer(base, extend map[string]string) map[string]string {
	merged := cloneTokens(base)
	for name, value := range extend {
		merged[name] = value
	}
	return merged
}

// Color returns the value of a color token.
func (t ResolvedTheme) Color(name string) (string, bool) {
	v, ok := t.colors[name]
	return v, ok
}

// BoxShadow returns the value of a box-shadow token.
func (t ResolvedTheme) BoxShadow(name string) (string, bool) {
	v, ok := t.boxShadow[name]
	return v, ok
}

// Animation returns the value of an animation token.
func (t ResolvedTheme) Animation(name string) (string, bool) {
	v, ok := t.animation[name]
	return v, ok
}

// TokenNames returns all token names for a category ("colors", "boxShadow"
// or "animation"), sorted for stable output.
func (t ResolvedTheme) TokenNames(category string) []string {
	var tokens map[string]string
	switch category {
	case "colors":
		tokens = t.colors
	case "boxShadow":
		tokens = t.boxShadow
	case "animation":
		tokens = t.animation
	default:
		return nil
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// classPrefixes maps utility-class prefixes to the CSS property they set and
// the token category the suffix resolves in.
var classPrefixes = []struct {
	prefix   string
	property string
	category string
}{
	{"shadow-", "box-shadow", "boxShadow"},
	{"animate-", "animation", "animation"},
	{"bg-", "background-color", "colors"},
	{"text-", "color", "colors"},
	{"border-", "border-color", "colors"},
}

// Rule resolves a utility class name to the CSS declaration it stands for:
//
//	shadow-glow -> box-shadow: 0 0 15px rgba(255, 93, 43, 0.3);
//	bg-primary  -> background-color: #FF5D2B;
//
// Unknown classes or token names return an error; emitting full rules for
// scanned markup is the build tool's job, not this module's.
func (t ResolvedTheme) Rule(class string) (string, error) {
	for _, p := range classPrefixes {
		if !strings.HasPrefix(class, p.prefix) {
			continue
		}

		token := strings.TrimPrefix(class, p.prefix)
		var value string
		var ok bool
		switch p.category {
		case "colors":
			value, ok = t.Color(token)
		case "boxShadow":
			value, ok = t.BoxShadow(token)
		case "animation":
			value, ok = t.Animation(token)
		}
		if !ok {
			return "", fmt.Errorf("class %q: no %s token named %q", class, p.category, token)
		}

		return fmt.Sprintf("%s: %s;", p.property, value), nil
	}

	return "", fmt.Errorf("class %q does not match a known utility prefix", class)
}
