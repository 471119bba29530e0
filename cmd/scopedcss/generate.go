package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/scopedcss"
	"github.com/yacobolo/scopedcss/internal/report"
	"github.com/yacobolo/scopedcss/internal/watch"
)

const watchDelay = 200 * time.Millisecond

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compile every template into a Go file of constants",
	Long: `Compile every template under the source directory and write
styles.gen.go with one class constant and one stylesheet constant per
template, plus a combined Stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	// Path defaults live in buildGenerateConfig so the config file can set them.
	f.String("source", "", "Source template directory (default \"web/styles\")")
	f.String("output-dir", "", "Output directory for styles.gen.go (default \"internal/web/ui\")")
	f.StringSlice("include", nil, "Glob patterns for templates to include")
	f.StringArray("set", nil, "Named placeholder value as name=value (repeatable)")
	f.String("output-format", "text", "Report format: text|json")
	f.Bool("watch", false, "Regenerate when templates change")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	config.Logger = logger

	sets, _ := cmd.Flags().GetStringArray("set")
	values, err := buildResolver(sets)
	if err != nil {
		return err
	}
	config.Values = values

	// The unset --watch flag would shadow generate.watch, so only an explicit
	// flag overrides the config.
	watchMode := k.Bool("generate.watch")
	if cmd.Flags().Changed("watch") {
		watchMode, _ = cmd.Flags().GetBool("watch")
	}
	if !watchMode {
		return generateOnce(cmd.OutOrStdout(), config)
	}

	// The first run reports errors but still starts watching.
	if err := generateOnce(cmd.OutOrStdout(), config); err != nil && !errors.Is(err, errIssuesReported) {
		return err
	}
	return watchAndGenerate(cmd.OutOrStdout(), config)
}

func generateOnce(w io.Writer, config scopedcss.Config) error {
	result, err := scopedcss.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if k.String("output-format") == "json" {
		if err := scopedcss.WriteGenerateJSON(w, result); err != nil {
			return err
		}
	} else if !getBoolWithFallback("quiet", "quiet", false) {
		printGenerateResult(w, result)
	}

	if result.HasErrors() {
		return errIssuesReported
	}
	return nil
}

func printGenerateResult(w io.Writer, result *scopedcss.GenerateResult) {
	useColors := getBoolWithFallback("color", "color", false)

	reporter := report.NewReporter(w, report.Config{
		UseColors:       useColors,
		PrintLines:      true,
		PrintLinterName: true,
	})
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(result)

	verbose := report.NewVerboseReporter(w, reporter.UseColors())
	verbose.PrintStatistics(result)
	if getBoolWithFallback("verbose", "verbose", false) {
		verbose.PrintStyles(result)
	}
	verbose.PrintWarnings(result)
}

func watchAndGenerate(w io.Writer, config scopedcss.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.New(watchDelay, isTemplatePath, logger)
	if err != nil {
		return err
	}
	if err := watcher.AddRecursive(config.SourceDir); err != nil {
		return err
	}

	logger.Info("watching for changes", zap.String("source", config.SourceDir))
	err = watcher.Run(ctx, func(paths []string) error {
		logger.Info("regenerating", zap.Int("changed", len(paths)))
		if err := generateOnce(w, config); err != nil && !errors.Is(err, errIssuesReported) {
			return err
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isTemplatePath(path string) bool {
	return strings.HasSuffix(path, ".scoped.css")
}
