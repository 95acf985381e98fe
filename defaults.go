package twconf

// baseColors, baseShadows and baseAnimations are the built-in token set the
// descriptor's theme.extend layers on top of. They mirror the stock palette
// of the consuming build tool; extend entries win on name collision.
var (
	baseColors = map[string]string{
		"inherit":     "inherit",
		"current":     "currentColor",
		"transparent": "transparent",
		"black":       "#000000",
		"white":       "#FFFFFF",
	}

	baseShadows = map[string]string{
		"sm":    "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
		"md":    "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
		"lg":    "0 10px 15px -3px rgba(0, 0, 0, 0.1)",
		"inner": "inset 0 2px 4px 0 rgba(0, 0, 0, 0.05)",
		"none":  "none",
	}

	baseAnimations = map[string]string{
		"spin":   "spin 1s linear infinite",
		"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
		"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
		"bounce": "bounce 1s infinite",
	}
)

// Default returns the stock descriptor. Every call builds a fresh value, so
// callers can never observe aliasing between two descriptors.
func Default() Descriptor {
	return Descriptor{
		Content: []string{
			"./index.html",
			"./src/**/*.{js,ts,jsx,tsx}",
		},
		Theme: Theme{
			Extend: Extension{
				Colors: map[string]string{
					"primary":    "#FF5D2B",
					"secondary":  "#FF5D2B",
					"background": "#171717",
				},
				BoxShadow: map[string]string{
					"glow": "0 0 15px rgba(255, 93, 43, 0.3)",
				},
				Animation: map[string]string{
					"pulse-slow": "pulse 3s cubic-bezier(0.4, 0, 0.6, 1) infinite",
				},
			},
		},
		Plugins: []PluginRef{},
	}
}
