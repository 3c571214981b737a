package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/linter/rules"
	"github.com/platinummonkey/yamllint/pkg/observability"
)

var (
	verbose     bool
	logLevel    string
	logFormat   string
	configFile  string
	configData  string
	format      string
	strict      bool
	noWarnings  bool
	metricsFile string
)

// Exit codes
const (
	exitOK       = 0
	exitErrors   = 1
	exitWarnings = 2
)

// lintFailure reports that problems were found. Its message has already
// been printed as part of the report.
type lintFailure struct {
	code int
}

func (e *lintFailure) Error() string {
	if e.code == exitWarnings {
		return "lint warnings found"
	}
	return "lint errors found"
}

func exitCode(err error) int {
	var failed *lintFailure
	if errors.As(err, &failed) {
		return failed.code
	}
	return exitErrors
}

var rootCmd = &cobra.Command{
	Use:   "yamllint [flags] FILE_OR_DIR...",
	Short: "A linter for YAML files",
	Long: `yamllint checks YAML files for cosmetic problems such as bad spacing
around colons, commas, hyphens and flow collection delimiters, missing
document start markers and duplicated keys.

Directories are searched recursively for files matching yaml-files. Use "-"
to read a document from standard input.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runLint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", observability.FormatText, "Log format: text, json")

	rootCmd.Flags().StringVarP(&configFile, "config-file", "c", "", "Path to a custom configuration")
	rootCmd.Flags().StringVarP(&configData, "config-data", "d", "", "Custom configuration (as YAML source)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "auto", "Output format: auto, standard, parsable, colored, github, json")
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "Return non-zero exit code on warnings as well as errors")
	rootCmd.Flags().BoolVar(&noWarnings, "no-warnings", false, "Output only error level problems")
	rootCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics of the run to this file")

	// Add subcommands
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(out io.Writer) (*logrus.Logger, error) {
	name := logLevel
	if verbose {
		name = "debug"
	}
	level, err := observability.ParseLogLevel(name)
	if err != nil {
		return nil, err
	}
	if logFormat != observability.FormatText && logFormat != observability.FormatJSON {
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
	return observability.NewLogger(level, logFormat, out), nil
}

// loadConfig resolves the configuration from the flags, falling back to a
// config file in the working directory
func loadConfig() (*linter.Config, error) {
	if configFile != "" && configData != "" {
		return nil, errors.New("--config-file and --config-data are mutually exclusive")
	}
	if configData != "" {
		return linter.ParseConfig([]byte(configData))
	}
	if configFile != "" {
		return linter.LoadConfig(configFile)
	}
	if env := os.Getenv("YAMLLINT_CONFIG_FILE"); env != "" {
		return linter.LoadConfig(env)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return linter.LoadConfigFromDir(wd)
}

func runLint(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry := prometheus.NewRegistry()
	engine := linter.NewLintEngine(config,
		linter.WithLogger(log),
		linter.WithMetrics(observability.NewMetrics(registry)),
		linter.WithCache(256),
	)
	rules.RegisterDefaultRules(engine.Registry())

	if _, err := engine.Prepare(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := collectFiles(ctx, args, config, cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.WithField("files", len(files)).Debug("collected files")

	results, lintErr := engine.LintFiles(ctx, files)
	if results == nil && lintErr != nil {
		return lintErr
	}

	// scan failures become problems, anything else is a real error
	failures := attachSyntaxProblems(results, lintErr)

	rep, err := newReporter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	reported, err := report(rep, results, noWarnings)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	summary := engine.GenerateSummary(reported)

	if metricsFile != "" {
		if err := observability.WriteTextfile(registry, metricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}

	switch {
	case summary.Errors > 0:
		return &lintFailure{code: exitErrors}
	case summary.Warnings > 0 && strict:
		return &lintFailure{code: exitWarnings}
	}
	return nil
}

// attachSyntaxProblems adds a "syntax" problem to the result of every
// document that failed to scan and returns the remaining errors
func attachSyntaxProblems(results []linter.LintResult, lintErr error) []error {
	var failures []error
	for _, err := range unwrapJoined(lintErr) {
		var scanErr *linter.ScanError
		p, ok := linter.SyntaxProblem(err)
		if !ok || !errors.As(err, &scanErr) {
			failures = append(failures, err)
			continue
		}
		for i := range results {
			if results[i].FilePath == scanErr.Path {
				results[i].Problems = append(results[i].Problems, p)
			}
		}
	}
	return failures
}

// unwrapJoined splits an errors.Join result into its parts
func unwrapJoined(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok && !isLeaf(err) {
		return joined.Unwrap()
	}
	return []error{err}
}

// isLeaf reports errors that unwrap to several causes but describe a
// single failure
func isLeaf(err error) bool {
	switch err.(type) {
	case *linter.ScanError, *linter.DefectError:
		return true
	}
	return false
}
