package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .scopedcss.yaml config file",
	Long:  `Create a .scopedcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# scopedcss configuration

# Shared settings
package: ui
minify: true
verbose: false

# Placeholder values available to every template as [[name]]
vars:
  primary: "#4ecdc4"
  radius: 4px

# values-file: styles/values.yaml

generate:
  source: web/styles
  output-dir: internal/web/ui
  include:
    - "**/*.scoped.css"
  watch: false

compile:
  format: text             # text | css | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
