package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twconf",
	Short: "Validate and inspect utility-CSS configuration descriptors",
	Long: `twconf owns the configuration descriptor read by a utility-class
CSS build tool: content globs, theme token extensions and plugin references.
It checks structural conformance, resolves tokens over the built-in defaults
and enumerates the files the content globs match.`,
	// Default behavior: run check when no subcommand is given.
	// loadConfig must run here because PreRunE of checkCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(checkCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".twconf.yaml", "Tool config file path")
	rootCmd.PersistentFlags().StringP("descriptor", "d", "tailwind.config.yaml", "Descriptor file to operate on")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
