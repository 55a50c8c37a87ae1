// Package cli implements the cobra-based CLI commands for breakdown.
//
// The root command itself performs the main operation: resolving a
// directive/layer pair into a prompt template, schema file, input/output
// locations and a validated variable set. Auxiliary subcommands (templates,
// config) live in their own files within this package.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/breakdown/internal/logging"
	"github.com/shinji-kodama/breakdown/internal/model"
)

// Global flag variables shared across all subcommands. These are bound to
// cobra persistent flags on the root command, which makes them available to
// every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug-level logging to stderr.
	verbose bool

	// configProfile is the --config/-c profile selecting the installation
	// config file.
	configProfile string

	// workingDirOverride is the --working-dir direct override, the top
	// tier of the configuration precedence chain.
	workingDirOverride string
)

// Version, Commit and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Process-level collaborators, overridable in tests.
var (
	// fsys is the filesystem every component reads through.
	fsys afero.Fs = afero.NewOsFs()

	// stdin is the standard-input stream consumed when the input resolves
	// to stdin.
	stdin io.Reader = os.Stdin

	// stdinIsPiped reports whether standard input is piped rather than a
	// terminal, which makes it eligible as the implicit input source.
	stdinIsPiped = func() bool {
		info, err := os.Stdin.Stat()
		if err != nil {
			return false
		}
		return (info.Mode() & os.ModeCharDevice) == 0
	}

	// logger is built in PersistentPreRunE; nop until then so early code
	// paths can log unconditionally.
	logger = zap.NewNop()

	// userVariables holds the --uv-<name>=<value> pairs split off the
	// argument list before cobra parsing (see uservars.go).
	userVariables = map[string]string{}
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "breakdown <directive> <layer>",
		Short: "Resolve prompt templates, schemas and variables for instruction generation",
		Long: `breakdown turns a classified input (a directive/layer pair such as "to issue")
plus a markdown or stdin input into a fully-resolved instruction plan: the
matching prompt template, its schema file, the input and output locations,
and a validated set of named template variables.

Free-form user variables are passed as repeatable --uv-<name>=<value> flags
and surface to templates as {uv.<name>} placeholders.

Examples:
  breakdown to issue --from project.md
  breakdown summary task -f notes.md -o out/summary.md --adaptation strict
  cat notes.md | breakdown to task --uv-owner=alice`,

		Args: cobra.MaximumNArgs(2),

		// SilenceUsage/SilenceErrors: we format errors ourselves (text or
		// JSON based on --json) in Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if len(args) != 2 {
				return model.NewCLIError(model.ExitGeneralError,
					"expected exactly two positional arguments: <directive> <layer>")
			}
			return runGenerate(cmd, args[0], args[1], flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configProfile, "config", "c", "", "Configuration profile (selects <profile>-app.yml)")
	rootCmd.PersistentFlags().StringVar(&workingDirOverride, "working-dir", "", "Override the working directory")

	rootCmd.Flags().StringVarP(&flags.from, "from", "f", "", "Input file path ('-' for stdin)")
	rootCmd.Flags().StringVarP(&flags.destination, "destination", "o", "", "Output file or directory path")
	rootCmd.Flags().StringVarP(&flags.input, "input", "i", "", "Layer type of the input document")
	rootCmd.Flags().StringVarP(&flags.adaptation, "adaptation", "a", "", "Prompt template variant name")

	rootCmd.AddCommand(NewTemplatesCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
//
// User-variable flags (--uv-<name>=<value>) are split off the raw argument
// list first: their names are arbitrary, so they cannot be declared to cobra
// up front.
func Execute(rootCmd *cobra.Command) {
	uv, rest := SplitUserVariableArgs(os.Args[1:])
	userVariables = uv
	rootCmd.SetArgs(rest)

	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format (JSON or
// text) based on the --json global flag. Errors go to stderr in both modes;
// stdout is reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// IsJSONOutput returns whether the --json flag is set. Subcommands use this
// to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
