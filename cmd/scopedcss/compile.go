package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/scopedcss"
	"github.com/yacobolo/scopedcss/internal/report"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile one template and print its class and CSS",
	Long: `Compile a single template read from a file, or from stdin when no file
is given or the file is "-".

Placeholder values are matched by position with --value, or by name with
--set, --values-file and the vars map of the config file.`,
	Example: `  echo '& { color: [[fg]]; }' | scopedcss compile --value red
  scopedcss compile button.scoped.css --set bg=#4ecdc4 --format json`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.StringArrayP("value", "V", nil, "Positional placeholder value (repeatable, in order)")
	f.StringArray("set", nil, "Named placeholder value as name=value (repeatable)")
	f.String("format", "", "Output format: text|css|json")
}

func runCompile(cmd *cobra.Command, args []string) error {
	filename := "<stdin>"
	var src []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		filename = args[0]
		src, err = os.ReadFile(filename)
	}
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	template := string(src)

	compiler := scopedcss.New(scopedcss.Options{
		Minify: getBoolWithFallback("minify", "minify", true),
		Logger: logger,
	})

	var res scopedcss.Result
	values, _ := cmd.Flags().GetStringArray("value")
	if len(values) > 0 {
		res, err = compiler.Compile(template, values)
	} else {
		sets, _ := cmd.Flags().GetStringArray("set")
		resolver, rerr := buildResolver(sets)
		if rerr != nil {
			return rerr
		}
		res, err = compiler.CompileWith(template, resolver)
	}
	if err != nil {
		if !getBoolWithFallback("quiet", "quiet", false) {
			reporter := report.NewReporter(cmd.ErrOrStderr(), report.Config{
				UseColors:       getBoolWithFallback("color", "color", false),
				PrintLines:      true,
				PrintLinterName: true,
			})
			reporter.PrintIssues([]scopedcss.Issue{scopedcss.NewIssue(filename, template, err)})
		}
		return errIssuesReported
	}

	format := scopedcss.DetermineOutputFormat(getStringWithFallback("format", "compile.format", "text"))
	return scopedcss.WriteResult(cmd.OutOrStdout(), res, format)
}
