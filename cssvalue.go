package twconf

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token-level CSS value checkers. These answer "does this string conform to
// the value grammar of its property category", nothing more: the build tool
// remains the authority on what the values mean.

var (
	hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	lengthPattern   = regexp.MustCompile(`(?i)^[+-]?(\d+\.?\d*|\.\d+)(px|em|rem|ex|ch|vw|vh|vmin|vmax|cm|mm|in|pt|pc|q)$`)
	timePattern     = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)(s|ms)$`)
	numberPattern   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
)

// colorFunctions are the CSS color function names accepted in token values.
var colorFunctions = map[string]bool{
	"rgb":   true,
	"rgba":  true,
	"hsl":   true,
	"hsla":  true,
	"hwb":   true,
	"lab":   true,
	"lch":   true,
	"oklab": true,
	"oklch": true,
	"color": true,
}

// namedColors covers the basic CSS color keywords plus the CSS-wide values
// the stock palette uses. Exotic extended names fail validation on purpose;
// tokens exist so projects stop spelling raw colors in markup.
var namedColors = map[string]bool{
	"transparent": true, "currentcolor": true, "inherit": true,
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true,
	"green": true, "lime": true, "olive": true, "yellow": true,
	"navy": true, "blue": true, "teal": true, "aqua": true,
	"orange": true, "pink": true, "gold": true, "indigo": true,
	"violet": true, "brown": true, "coral": true, "crimson": true,
	"cyan": true, "magenta": true, "salmon": true, "slategray": true,
}

// timingKeywords are the single-ident easing functions of the animation
// shorthand.
var timingKeywords = map[string]bool{
	"linear": true, "ease": true, "ease-in": true, "ease-out": true,
	"ease-in-out": true, "step-start": true, "step-end": true,
}

// animationKeywords are direction, fill-mode and play-state idents that may
// appear in the shorthand without being the keyframe name.
var animationKeywords = map[string]bool{
	"normal": true, "reverse": true, "alternate": true,
	"alternate-reverse": true, "none": true, "forwards": true,
	"backwards": true, "both": true, "running": true, "paused": true,
}

// cssToken is a flattened lexer token: function calls collapse into a single
// token carrying the function name.
type cssToken struct {
	tt   css.TokenType
	text string
	name string // lowercased function name for FunctionToken
}

// scanValue tokenizes a CSS value, dropping whitespace and collapsing
// function calls. ok is false when a function call never closes.
func scanValue(value string) (tokens []cssToken, ok bool) {
	lexer := css.NewLexer(parse.NewInputString(value))

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is the normal end of input
			return tokens, true
		case css.WhitespaceToken:
			continue
		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(text), "("))
			full, closed := consumeFunction(lexer, string(text))
			if !closed {
				return nil, false
			}
			tokens = append(tokens, cssToken{tt: css.FunctionToken, text: full, name: name})
		default:
			tokens = append(tokens, cssToken{tt: tt, text: string(text)})
		}
	}
}

// consumeFunction reads tokens until the matching closing parenthesis and
// returns the full call text.
func consumeFunction(lexer *css.Lexer, prefix string) (string, bool) {
	var b strings.Builder
	b.WriteString(prefix)
	depth := 1

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return b.String(), false
		}

		b.Write(text)

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return b.String(), true
			}
		}
	}
}

// splitLayers splits a token stream on top-level commas. Function calls are
// already collapsed, so every CommaToken seen here separates layers.
func splitLayers(tokens []cssToken) [][]cssToken {
	var layers [][]cssToken
	current := []cssToken{}

	for _, tok := range tokens {
		if tok.tt == css.CommaToken {
			layers = append(layers, current)
			current = []cssToken{}
			continue
		}
		current = append(current, tok)
	}

	return append(layers, current)
}

// IsColor reports whether value conforms to CSS color syntax: six-digit hex
// (also 3/4/8), a recognized color function, or a basic named color.
func IsColor(value string) bool {
	tokens, ok := scanValue(strings.TrimSpace(value))
	if !ok || len(tokens) != 1 {
		return false
	}

	tok := tokens[0]
	switch tok.tt {
	case css.HashToken:
		digits := strings.TrimPrefix(tok.text, "#")
		switch len(digits) {
		case 3, 4, 6, 8:
			return hexColorPattern.MatchString(digits)
		}
		return false
	case css.FunctionToken:
		return colorFunctions[tok.name]
	case css.IdentToken:
		return namedColors[strings.ToLower(tok.text)]
	}
	return false
}

// isColorToken reports whether a single already-scanned token is a color.
func isColorToken(tok cssToken) bool {
	switch tok.tt {
	case css.HashToken:
		digits := strings.TrimPrefix(tok.text, "#")
		switch len(digits) {
		case 3, 4, 6, 8:
			return hexColorPattern.MatchString(digits)
		}
		return false
	case css.FunctionToken:
		return colorFunctions[tok.name]
	case css.IdentToken:
		return namedColors[strings.ToLower(tok.text)]
	}
	return false
}

// isLength accepts dimension tokens with a length unit, and the unitless
// zero the shorthand grammar allows.
func isLength(tok cssToken) bool {
	switch tok.tt {
	case css.DimensionToken:
		return lengthPattern.MatchString(tok.text)
	case css.NumberToken:
		f := strings.TrimLeft(tok.text, "+-")
		return f == "0" || f == "0.0"
	}
	return false
}

// IsBoxShadow reports whether value conforms to box-shadow grammar:
// comma-separated layers of [inset?] <length>{2,4} <color>?, or "none".
func IsBoxShadow(value string) bool {
	trimmed := strings.TrimSpace(value)
	if strings.EqualFold(trimmed, "none") {
		return true
	}

	tokens, ok := scanValue(trimmed)
	if !ok || len(tokens) == 0 {
		return false
	}

	for _, layer := range splitLayers(tokens) {
		if !isShadowLayer(layer) {
			return false
		}
	}
	return true
}

func isShadowLayer(layer []cssToken) bool {
	var lengths, colors, insets int

	for _, tok := range layer {
		switch {
		case tok.tt == css.IdentToken && strings.EqualFold(tok.text, "inset"):
			insets++
		case isLength(tok):
			lengths++
		case isColorToken(tok):
			colors++
		default:
			return false
		}
	}

	return lengths >= 2 && lengths <= 4 && colors <= 1 && insets <= 1
}

// IsAnimation reports whether value conforms to animation shorthand grammar:
// comma-separated layers, each with a duration, optional timing function and
// delay, optional iteration count, and idents for keyframe name, direction,
// fill mode and play state.
func IsAnimation(value string) bool {
	tokens, ok := scanValue(strings.TrimSpace(value))
	if !ok || len(tokens) == 0 {
		return false
	}

	for _, layer := range splitLayers(tokens) {
		if !isAnimationLayer(layer) {
			return false
		}
	}
	return true
}

func isAnimationLayer(layer []cssToken) bool {
	var times, timings, iterations, names int

	for _, tok := range layer {
		switch tok.tt {
		case css.DimensionToken:
			if !timePattern.MatchString(tok.text) {
				return false
			}
			times++
		case css.NumberToken:
			if !numberPattern.MatchString(tok.text) {
				return false
			}
			iterations++
		case css.FunctionToken:
			if tok.name != "cubic-bezier" && tok.name != "steps" {
				return false
			}
			timings++
		case css.IdentToken:
			ident := strings.ToLower(tok.text)
			switch {
			case ident == "infinite":
				iterations++
			case timingKeywords[ident]:
				timings++
			case animationKeywords[ident]:
				// direction / fill-mode / play-state
			default:
				// custom ident: the keyframe name
				names++
			}
		default:
			return false
		}
	}

	// duration is required; delay is the only second time allowed
	return times >= 1 && times <= 2 && timings <= 1 && iterations <= 1 && names <= 1
}
