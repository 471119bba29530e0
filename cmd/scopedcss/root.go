package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errIssuesReported means diagnostics were already printed; main exits 1
// without printing the error again.
var errIssuesReported = errors.New("issues reported")

// logger is configured by setup before any command runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "scopedcss",
	Short: "Scoped CSS compiler for Go projects",
	Long: `Compile style templates into class-bound CSS.
A template uses & for its root selector and [[name]] for values:

  & { background: [[bg]]; }  ->  .css-1a2b3c4d{background:#4ecdc4}

With no subcommand, scopedcss runs generate.`,
	// setup is called here because PreRunE of generateCmd is not triggered
	// when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := setup(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.String("package", "ui", "Go package name for generated code")
	pf.Bool("color", false, "Force color output")
	pf.Bool("minify", true, "Minify the generated CSS")
	pf.String("values-file", "", "YAML or JSON file of placeholder values")
	pf.String("config", defaultConfigPath, "Config file path")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	l, err := newLogger(getBoolWithFallback("verbose", "verbose", false))
	if err != nil {
		return err
	}
	logger = l
	return nil
}
