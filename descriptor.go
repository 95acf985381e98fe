// Package twconf owns the configuration descriptor consumed by a
// utility-class CSS build tool.
//
// A descriptor declares which source files the build tool scans for
// utility-class usage, the design tokens layered on top of the built-in
// token set, and the (currently empty) plugin list:
//
//	d := twconf.Default()
//	issues := twconf.Validate(d, "tailwind.config.yaml")
//	theme := twconf.Resolve(d)
//	rule, _ := theme.Rule("shadow-glow")
//	// rule == "box-shadow: 0 0 15px rgba(255, 93, 43, 0.3);"
//
// The descriptor is a pure value: constructed once, never mutated. twconf
// validates structural conformance and exposes the token-to-value mapping;
// class-usage scanning, tree-shaking and CSS emission belong to the build
// tool, not to this module.
package twconf

// Descriptor is the configuration record read once by the build tool.
//
// Content globs are set-like: order carries no meaning and duplicates are
// harmless. Token names are unique within a category by construction (map
// keys). Values are opaque CSS strings; Validate checks their grammar.
type Descriptor struct {
	Content []string `koanf:"content" json:"content"`
	Theme   Theme    `koanf:"theme" json:"theme"`
	// Plugins accepts both bare strings and {name: ...} entries in files,
	// so it is decoded by hand in load.go rather than by koanf.
	Plugins []PluginRef `koanf:"-" json:"plugins"`
}

// Theme holds the token categories layered over the built-in defaults.
type Theme struct {
	Extend Extension `koanf:"extend" json:"extend"`
}

// Extension maps token names to CSS values per category.
type Extension struct {
	Colors    map[string]string `koanf:"colors" json:"colors"`
	BoxShadow map[string]string `koanf:"boxShadow" json:"boxShadow"`
	Animation map[string]string `koanf:"animation" json:"animation"`
}

// PluginRef names a build-time plugin. The stock descriptor carries none;
// twconf records references without loading or running anything.
type PluginRef struct {
	Name string `koanf:"name" json:"name"`
}

// Clone returns a deep copy. Callers that hand descriptors across package
// boundaries copy first so the original stays immutable.
func (d Descriptor) Clone() Descriptor {
	out := Descriptor{
		Content: append([]string(nil), d.Content...),
		Theme: Theme{
			Extend: Extension{
				Colors:    cloneTokens(d.Theme.Extend.Colors),
				BoxShadow: cloneTokens(d.Theme.Extend.BoxShadow),
				Animation: cloneTokens(d.Theme.Extend.Animation),
			},
		},
		Plugins: append([]PluginRef(nil), d.Plugins...),
	}
	return out
}

// Normalize replaces nil collections with empty ones so loaded descriptors
// behave the same whether or not a section was present in the file.
func (d *Descriptor) Normalize() {
	if d.Content == nil {
		d.Content = []string{}
	}
	if d.Theme.Extend.Colors == nil {
		d.Theme.Extend.Colors = map[string]string{}
	}
	if d.Theme.Extend.BoxShadow == nil {
		d.Theme.Extend.BoxShadow = map[string]string{}
	}
	if d.Theme.Extend.Animation == nil {
		d.Theme.Extend.Animation = map[string]string{}
	}
	if d.Plugins == nil {
		d.Plugins = []PluginRef{}
	}
}

// categories returns the extension maps in reporting order.
func (e Extension) categories() []tokenCategory {
	return []tokenCategory{
		{name: "colors", tokens: e.Colors},
		{name: "boxShadow", tokens: e.BoxShadow},
		{name: "animation", tokens: e.Animation},
	}
}

type tokenCategory struct {
	name   string
	tokens map[string]string
}

func cloneTokens(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
