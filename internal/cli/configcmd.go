// configcmd.go implements the "breakdown config" command, which prints the
// effective configuration after the full precedence merge. It exists so an
// operator can see exactly which working directory, base directories and
// config file an invocation would use, without running a resolution.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/breakdown/internal/config"
)

// NewConfigCommand creates the "config" cobra command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration that results from merging the built-in defaults,
the installation config file for the selected profile, and any CLI overrides.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			printConfig(cmd, cfg)
			return nil
		},
	}
}

// printConfig outputs the effective configuration in text or JSON format.
func printConfig(cmd *cobra.Command, cfg config.EffectiveConfig) {
	out := cmd.OutOrStdout()

	if IsJSONOutput() {
		result := map[string]interface{}{
			"profile":       cfg.Profile().Value(),
			"workingDir":    cfg.WorkingDir().Value(),
			"promptBaseDir": cfg.PromptBaseDir(),
			"schemaBaseDir": cfg.SchemaBaseDir(),
			"promptRoot":    cfg.PromptRoot(),
			"schemaRoot":    cfg.SchemaRoot(),
			"sourceFile":    cfg.SourcePath(),
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(out, string(data))
		return
	}

	source := cfg.SourcePath()
	if source == "" {
		source = "(built-in defaults)"
	}

	fmt.Fprintf(out, "Profile:         %s\n", cfg.Profile().Value())
	fmt.Fprintf(out, "Config file:     %s\n", source)
	fmt.Fprintf(out, "Working dir:     %s\n", cfg.WorkingDir().Value())
	fmt.Fprintf(out, "Prompt base dir: %s\n", cfg.PromptBaseDir())
	fmt.Fprintf(out, "Schema base dir: %s\n", cfg.SchemaBaseDir())
	fmt.Fprintf(out, "Prompt root:     %s\n", cfg.PromptRoot())
	fmt.Fprintf(out, "Schema root:     %s\n", cfg.SchemaRoot())
}
