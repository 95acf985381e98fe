package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconf"
)

var filesCmd = &cobra.Command{
	Use:   "files [descriptor]",
	Short: "List the files the content globs match",
	Long: `Expand the descriptor's content globs and print every file the build
tool would scan. Gitignored files are skipped; duplicates across overlapping
patterns are listed once.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().String("dir", "", "Base directory for relative globs (default: descriptor's notion of cwd)")
}

func runFiles(cmd *cobra.Command, args []string) error {
	path := descriptorPath(args)

	d, err := twconf.Load(path)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	files, stats, err := twconf.ExpandContent(dir, d.Content)
	if err != nil {
		return fmt.Errorf("expanding content globs: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	for _, f := range files {
		fmt.Println(f)
	}

	fmt.Printf("\n%d matched", stats.FilesMatched)
	if stats.FilesSkipped > 0 {
		fmt.Printf(" (%d gitignored)", stats.FilesSkipped)
	}
	fmt.Println()

	return nil
}
