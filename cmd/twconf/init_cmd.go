package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconf"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a descriptor file with the stock configuration",
	Long:  `Create a descriptor file in the current directory carrying the stock content globs, theme extensions and empty plugin list.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		if out == "" {
			out = "tailwind.config.yaml"
			if format == "json" {
				out = "tailwind.config.json"
			}
		}

		if _, err := os.Stat(out); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", out)
		}

		var content []byte
		switch format {
		case "yaml", "":
			content = []byte(defaultDescriptor)
		case "json":
			var err error
			content, err = json.MarshalIndent(twconf.Default(), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding descriptor: %w", err)
			}
			content = append(content, '\n')
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", format)
		}

		if err := os.WriteFile(out, content, 0644); err != nil {
			return fmt.Errorf("writing descriptor file: %w", err)
		}

		fmt.Printf("Created %s\n", out)
		return nil
	},
}

const defaultDescriptor = `# Utility-CSS configuration descriptor
# Read once at build time by the CSS build tool.

content:
  - "./index.html"
  - "./src/**/*.{js,ts,jsx,tsx}"

theme:
  extend:
    colors:
      primary: "#FF5D2B"
      secondary: "#FF5D2B"
      background: "#171717"
    boxShadow:
      glow: "0 0 15px rgba(255, 93, 43, 0.3)"
    animation:
      pulse-slow: "pulse 3s cubic-bezier(0.4, 0, 0.6, 1) infinite"

plugins: []
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing descriptor file")
	initCmd.Flags().String("format", "yaml", "Descriptor format: yaml | json")
	initCmd.Flags().String("out", "", "Output path (default: tailwind.config.yaml|json)")
}
