package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconf"
)

var checkCmd = &cobra.Command{
	Use:   "check [descriptor]",
	Short: "Validate a descriptor for structural conformance",
	Long: `Load a descriptor file and check every conformance property:
non-empty content globs with valid syntax, CSS color / box-shadow /
animation value grammar per token, and well-formed plugin references.

Errors fail the build; warnings do not unless --strict is set.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.Bool("watch", false, "Re-validate whenever the descriptor changes")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("print-values", true, "Show offending values under issues")
	f.Bool("print-linter-name", true, "Show (twconf) suffix on issues")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := descriptorPath(args)

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		return watchCheck(path)
	}

	result, err := checkDescriptor(path)
	if err != nil {
		return err
	}

	printCheckResult(result)

	// Exit code logic - "Soft Gate" approach: only errors fail the build
	// unless strict mode makes warnings fatal too.
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict && len(result.Issues) > 0 {
		os.Exit(1)
	}
	if result.ErrorCount() > 0 {
		os.Exit(1)
	}

	return nil
}

// checkDescriptor loads and validates one descriptor file.
func checkDescriptor(path string) (twconf.CheckResult, error) {
	d, err := twconf.Load(path)
	if err != nil {
		return twconf.CheckResult{}, err
	}

	return twconf.CheckResult{
		Path:       path,
		Descriptor: d,
		Issues:     twconf.Validate(d, path),
	}, nil
}

func printCheckResult(result twconf.CheckResult) {
	if getBoolWithFallback("quiet", "quiet", false) {
		return
	}

	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := twconf.DetermineOutputFormat(outputFormat)

	if err := twconf.WriteOutput(os.Stdout, result, format, buildReportConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
	}
}

// watchCheck re-validates on every descriptor change until interrupted.
// Validation failures are reported but never terminate the watch.
func watchCheck(path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := twconf.Watch(ctx, path, func() {
		result, err := checkDescriptor(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		printCheckResult(result)
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
