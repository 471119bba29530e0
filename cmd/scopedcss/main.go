// Command scopedcss compiles scoped style templates and generates Go
// constants for them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/scopedcss/internal/report"
)

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}
	if !errors.Is(err, errIssuesReported) {
		useColors := report.ShouldUseColors(false)
		fmt.Fprintln(os.Stderr, report.RenderStyle(report.StyleRed, "Error: "+err.Error(), useColors))
	}
	os.Exit(1)
}
