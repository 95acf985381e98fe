package twconf

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads a descriptor from a YAML or JSON file. JSON parses as a YAML
// subset, so one parser covers both; the external tool's native descriptor
// translates one-to-one into either form.
//
// Unknown top-level keys are tolerated — the build tool owns the full schema
// and this module only claims the fields it models. A missing content
// section loads fine and is reported by Validate, not here.
func Load(path string) (Descriptor, error) {
	if _, err := os.Stat(path); err != nil {
		return Descriptor{}, fmt.Errorf("descriptor %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Descriptor{}, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}

	return unmarshalDescriptor(k, path)
}

// LoadBytes parses descriptor content directly, for callers that already
// hold the raw bytes (tests, editors, stdin).
func LoadBytes(content []byte) (Descriptor, error) {
	k := koanf.New(".")
	if err := k.Load(rawProvider{content}, yaml.Parser()); err != nil {
		return Descriptor{}, fmt.Errorf("parsing descriptor: %w", err)
	}

	return unmarshalDescriptor(k, "<bytes>")
}

func unmarshalDescriptor(k *koanf.Koanf, origin string) (Descriptor, error) {
	var d Descriptor
	if err := k.Unmarshal("", &d); err != nil {
		return Descriptor{}, fmt.Errorf("descriptor %s does not match schema: %w", origin, err)
	}

	plugins, err := decodePlugins(k.Get("plugins"))
	if err != nil {
		return Descriptor{}, fmt.Errorf("descriptor %s: %w", origin, err)
	}
	d.Plugins = plugins

	d.Normalize()
	return d, nil
}

// decodePlugins accepts both spellings found in descriptor files:
//
//	plugins: ["typography"]
//	plugins: [{name: typography}]
func decodePlugins(raw any) ([]PluginRef, error) {
	if raw == nil {
		return []PluginRef{}, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("plugins must be a sequence, got %T", raw)
	}

	plugins := make([]PluginRef, 0, len(entries))
	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			plugins = append(plugins, PluginRef{Name: e})
		case map[string]any:
			name, _ := e["name"].(string)
			plugins = append(plugins, PluginRef{Name: name})
		default:
			return nil, fmt.Errorf("plugins[%d]: unsupported entry type %T", i, entry)
		}
	}
	return plugins, nil
}

// rawProvider feeds in-memory bytes to koanf. The file provider is the
// normal path; this exists so LoadBytes shares the same parser.
type rawProvider struct {
	content []byte
}

func (p rawProvider) ReadBytes() ([]byte, error) {
	return p.content, nil
}

func (p rawProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("raw provider supports only ReadBytes")
}
