// Command stepcheck statically resolves the steps of a Gherkin test suite
// against its step definitions and reports unmatched and ambiguous steps.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mojo-Solo/stepcheck/internal/app"
	"github.com/Mojo-Solo/stepcheck/internal/report"
)

func main() {
	opts := app.Options{}
	var (
		noColor bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "stepcheck",
		Short: "Static step resolution for Gherkin test suites",
		Long: `stepcheck scans feature files and step-definition sources, resolves every
step against every definition pattern of the same keyword, and classifies
each step as matched, unmatched, or ambiguous. It never executes steps and
never edits sources.

Exit codes: 0 all steps matched (unmatched steps are pending unless
--strict), 1 any step is ambiguous, 2 any step is unmatched under --strict,
3 the run itself failed (unreadable input, bad tag expression).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			reporter := report.NewConsoleReporter(cmd.OutOrStdout(), !noColor)

			code, err := app.Run(cmd.Context(), app.NewGherkinFeatureScanner(), app.NewSourceDefinitionScanner(), reporter, opts)
			if err != nil {
				return err
			}
			if code != app.ExitOK {
				os.Exit(code)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringSliceVar(&opts.FeatureDirs, "features", []string{"features"}, "directories to search for .feature files")
	flags.StringSliceVar(&opts.TSStepDirs, "steps", nil, "directories to search for cucumber-js step definitions (.ts/.js)")
	flags.StringSliceVar(&opts.GoStepDirs, "go-steps", nil, "directories to search for Go step definitions (@step comments)")
	flags.StringVar(&opts.TagExpression, "tags", "", `tag expression filter, e.g. "@smoke and not @slow"`)
	flags.StringVar(&opts.JSONPath, "json", "", "write a JSON report to this path")
	flags.StringVar(&opts.StubsPath, "stubs", "", "write Go stubs for unmatched steps to this path")
	flags.BoolVar(&opts.StrictUnmatched, "strict", false, "treat unmatched steps as fatal (exit code 2)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(app.ExitRunError)
	}
}
