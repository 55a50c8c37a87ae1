// generate.go implements the root "breakdown <directive> <layer>" operation.
//
// Orchestration steps:
//  1. Resolve the effective configuration (defaults < file < CLI overrides)
//  2. Validate the classification tokens against the configured patterns
//  3. Resolve prompt template, schema file, input and output locations
//     independently, so one failure does not hide its siblings
//  4. Assemble the validated variable set
//  5. Output the resolution plan (text or JSON) for the rendering collaborator
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/breakdown/internal/config"
	"github.com/shinji-kodama/breakdown/internal/model"
	"github.com/shinji-kodama/breakdown/internal/resolver"
	"github.com/shinji-kodama/breakdown/internal/schema"
	"github.com/shinji-kodama/breakdown/internal/variables"
)

// generateFlags holds the flag values for the root operation.
type generateFlags struct {
	from        string // --from: input file path, or "-" for stdin
	destination string // --destination: output file or directory
	input       string // --input: layer type of the input document
	adaptation  string // --adaptation: template variant name
}

// Plan is the fully-resolved result handed to the external rendering
// collaborator: every location plus the variable projections.
type Plan struct {
	Directive         string                `json:"directive"`
	Layer             string                `json:"layer"`
	PromptTemplate    resolver.ResolvedPath `json:"promptTemplate"`
	SchemaFile        resolver.ResolvedPath `json:"schemaFile"`
	Input             resolver.Input        `json:"input"`
	Output            resolver.ResolvedPath `json:"output"`
	Variables         map[string]string     `json:"variables"`
	TemplateVariables map[string]string     `json:"templateVariables"`
}

// runGenerate is the main orchestration function for the root command.
func runGenerate(cmd *cobra.Command, directiveArg, layerArg string, flags *generateFlags) error {
	// Step 1: effective configuration.
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		zap.String("workingDir", cfg.WorkingDir().Value()),
		zap.String("promptRoot", cfg.PromptRoot()),
		zap.String("schemaRoot", cfg.SchemaRoot()),
		zap.String("profile", cfg.Profile().Value()),
		zap.String("source", cfg.SourcePath()))

	// Step 2: classification validation. The value-object constructors are
	// total; the pattern check here is the validation boundary.
	directive, layer, err := classify(directiveArg, layerArg)
	if err != nil {
		return err
	}

	// Step 3: path resolution. The four resolutions are independent: each
	// failure is collected and every sibling still runs, so the operator
	// sees all problems in one pass.
	var failures []error

	promptPath, err := resolver.NewPromptResolver(fsys).Resolve(cfg, directive, layer, resolver.PromptQuery{
		FromLayer:  resolver.FromLayerHint(flags.input, flags.from),
		Adaptation: flags.adaptation,
	})
	if err != nil {
		failures = append(failures, err)
	} else {
		logger.Debug("prompt template resolved", zap.String("path", promptPath.Value))
	}

	schemaPath, err := resolver.NewSchemaResolver(fsys).Resolve(cfg, directive, layer)
	if err != nil {
		failures = append(failures, err)
	} else {
		logger.Debug("schema file resolved", zap.String("path", schemaPath.Value))
	}

	input, err := resolver.NewInputResolver().Resolve(flags.from, stdinIsPiped())
	if err != nil {
		failures = append(failures, err)
	}

	output, err := resolver.NewOutputResolver().Resolve(cfg, directive, layer, flags.destination)
	if err != nil {
		failures = append(failures, err)
	} else {
		logger.Debug("output location resolved", zap.String("path", output.Value))
	}

	if len(failures) > 0 {
		return model.WrapCLIError(model.ExitResolutionError, "path resolution failed", joinErrors(failures))
	}

	// The schema file was located above; loading it verifies it parses and
	// gives the renderer its content up front.
	doc, err := schema.NewLoader(fsys).Load(schemaPath.Value)
	if err != nil {
		return model.WrapCLIError(model.ExitResolutionError, "schema file unusable", err)
	}
	logger.Debug("schema loaded", zap.String("title", doc.Title()))

	// Step 4: variable assembly.
	b := variables.NewBuilder()
	if input.Stdin {
		text, readErr := io.ReadAll(stdin)
		if readErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to read standard input", readErr)
		}
		b.AddStdinVariable(string(text))
	} else {
		b.AddFilePathVariable(variables.NameInputTextFile, input.Path)
	}
	b.AddFilePathVariable(variables.NameDestinationPath, output.Value)
	b.AddFilePathVariable(variables.NameSchemaFile, schemaPath.Value)
	b.AddUserVariables(userVariables)

	if _, err := b.Build(); err != nil {
		return model.WrapCLIError(model.ExitVariableError, "variable assembly failed", err)
	}

	// Step 5: output the plan.
	plan := &Plan{
		Directive:         directive.Value(),
		Layer:             layer.Value(),
		PromptTemplate:    promptPath,
		SchemaFile:        schemaPath,
		Input:             input,
		Output:            output,
		Variables:         b.ToRecord(),
		TemplateVariables: b.ToTemplateRecord(),
	}
	printPlan(cmd, plan)
	return nil
}

// resolveConfig builds the EffectiveConfig from the persistent flags.
func resolveConfig(cmd *cobra.Command) (config.EffectiveConfig, error) {
	profile, err := config.NewProfileName(configProfile)
	if err != nil {
		return config.EffectiveConfig{}, model.WrapCLIError(model.ExitConfigError, "invalid configuration profile", err)
	}

	overrides := config.Overrides{}
	if cmd.Flags().Changed("working-dir") {
		overrides.WorkingDir = &workingDirOverride
	}

	cfg, err := config.NewResolver(fsys).Resolve(profile, overrides)
	if err != nil {
		return config.EffectiveConfig{}, model.WrapCLIError(model.ExitConfigError, "configuration resolution failed", err)
	}
	return cfg, nil
}

// classify validates the positional tokens against the configured patterns
// and constructs the classification value objects.
func classify(directiveArg, layerArg string) (model.DirectiveType, model.LayerType, error) {
	directivePattern := model.NewClassificationPattern(model.DefaultDirectivePattern)
	layerPattern := model.NewClassificationPattern(model.DefaultLayerPattern)
	if directivePattern == nil || layerPattern == nil {
		// A nil pattern means the configured expression failed to compile;
		// the pattern object stays silent and the caller reports it.
		return model.DirectiveType{}, model.LayerType{}, model.NewCLIError(model.ExitConfigError, "classification pattern failed to compile")
	}

	if !directivePattern.Matches(directiveArg) {
		return model.DirectiveType{}, model.LayerType{}, model.NewCLIError(model.ExitClassificationError,
			fmt.Sprintf("invalid directive %q (must match %s)", directiveArg, directivePattern.Spec()))
	}
	if !layerPattern.Matches(layerArg) {
		return model.DirectiveType{}, model.LayerType{}, model.NewCLIError(model.ExitClassificationError,
			fmt.Sprintf("invalid layer %q (must match %s)", layerArg, layerPattern.Spec()))
	}

	return model.NewDirectiveType(directiveArg), model.NewLayerType(layerArg), nil
}

// joinErrors flattens the collected resolution failures into one error whose
// message names every problem.
func joinErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// printPlan outputs the resolution plan in text or JSON format.
func printPlan(cmd *cobra.Command, plan *Plan) {
	out := cmd.OutOrStdout()

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(plan, "", "  ")
		fmt.Fprintln(out, string(data))
		return
	}

	fmt.Fprintf(out, "Resolved %s %s\n", plan.Directive, plan.Layer)
	fmt.Fprintf(out, "  Prompt:   %s\n", plan.PromptTemplate.Value)
	fmt.Fprintf(out, "  Schema:   %s\n", plan.SchemaFile.Value)
	if plan.Input.Stdin {
		fmt.Fprintf(out, "  Input:    (stdin)\n")
	} else {
		fmt.Fprintf(out, "  Input:    %s\n", plan.Input.Path)
	}
	fmt.Fprintf(out, "  Output:   %s\n", plan.Output.Value)

	if len(plan.Variables) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Variables:")
		for _, name := range sortedKeys(plan.Variables) {
			fmt.Fprintf(out, "    %-20s %s\n", name, summarize(plan.Variables[name]))
		}
	}
}

// sortedKeys returns the map keys in sorted order for stable text output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// summarize truncates long variable values (e.g. stdin text) for readable
// text output. JSON output always carries the full value.
func summarize(value string) string {
	const max = 60
	value = strings.ReplaceAll(value, "\n", " ")
	if len(value) > max {
		return value[:max] + "..."
	}
	return value
}
