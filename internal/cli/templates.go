// templates.go implements the "breakdown templates" command: a read-only
// listing of every prompt template under the effective prompt base directory.
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/breakdown/internal/catalog"
)

// NewTemplatesCommand creates the "templates" cobra command.
func NewTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available prompt templates",
		Long: `List every prompt template found under the effective prompt base
directory, with its directive, layer, input layer and optional adaptation.

The listing is read-only; an empty or missing prompt directory simply yields
an empty list.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			// Resolve-at-use: the prompt root is anchored to the current
			// process directory, same as the path resolvers.
			root := cfg.PromptRoot()
			if !filepath.IsAbs(root) {
				if abs, absErr := filepath.Abs(root); absErr == nil {
					root = abs
				}
			}
			logger.Debug("listing templates", zap.String("promptRoot", root))

			entries, err := catalog.List(fsys, root)
			if err != nil {
				return err
			}
			printTemplates(cmd, root, entries)
			return nil
		},
	}
}

// printTemplates outputs the catalog in text or JSON format.
func printTemplates(cmd *cobra.Command, root string, entries []catalog.Entry) {
	out := cmd.OutOrStdout()

	if IsJSONOutput() {
		result := map[string]interface{}{
			"promptRoot": root,
			"templates":  entries,
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(out, string(data))
		return
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No templates found under %s\n", root)
		return
	}

	fmt.Fprintf(out, "Templates under %s:\n", root)
	for _, entry := range entries {
		variant := ""
		if entry.Adaptation != "" {
			variant = fmt.Sprintf("  (adaptation: %s)", entry.Adaptation)
		}
		fmt.Fprintf(out, "  %-10s %-10s from=%-10s %s%s\n",
			entry.Directive, entry.Layer, entry.FromLayer, entry.Path, variant)
	}
}
