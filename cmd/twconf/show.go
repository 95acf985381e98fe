package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconf"
)

var showCmd = &cobra.Command{
	Use:   "show [descriptor]",
	Short: "Print the resolved theme",
	Long: `Layer the descriptor's theme extensions over the built-in token set
and print the resulting token-to-value mapping. With --class, print the CSS
declaration a single utility class resolves to.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runShow,
}

func init() {
	f := showCmd.Flags()
	f.String("class", "", "Resolve a single utility class (e.g. shadow-glow)")
	f.Bool("json", false, "Emit the resolved theme as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	path := descriptorPath(args)

	d, err := twconf.Load(path)
	if err != nil {
		return err
	}
	theme := twconf.Resolve(d)

	if class, _ := cmd.Flags().GetString("class"); class != "" {
		rule, err := theme.Rule(class)
		if err != nil {
			return err
		}
		fmt.Println(rule)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printThemeJSON(theme)
	}

	printTheme(theme)
	return nil
}

func printTheme(theme twconf.ResolvedTheme) {
	useColors := getBoolWithFallback("color", "color", false)

	categories := []struct {
		label    string
		category string
		lookup   func(string) (string, bool)
	}{
		{"colors", "colors", theme.Color},
		{"boxShadow", "boxShadow", theme.BoxShadow},
		{"animation", "animation", theme.Animation},
	}

	for _, cat := range categories {
		fmt.Println(twconf.RenderStyle(twconf.StyleCyan, cat.label, useColors))
		for _, name := range theme.TokenNames(cat.category) {
			value, _ := cat.lookup(name)
			fmt.Printf("  %-14s %s\n", name, value)
		}
		fmt.Println()
	}
}

func printThemeJSON(theme twconf.ResolvedTheme) error {
	out := map[string]map[string]string{
		"colors":    {},
		"boxShadow": {},
		"animation": {},
	}

	for _, name := range theme.TokenNames("colors") {
		out["colors"][name], _ = theme.Color(name)
	}
	for _, name := range theme.TokenNames("boxShadow") {
		out["boxShadow"][name], _ = theme.BoxShadow(name)
	}
	for _, name := range theme.TokenNames("animation") {
		out["animation"][name], _ = theme.Animation(name)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
