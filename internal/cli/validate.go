package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colorelic/internal/model"
)

// validateReport is the JSON payload of a validation run.
type validateReport struct {
	File       string   `json:"file"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <model.yaml>",
		Short: "Validate a model file against the schema",
		Long: `Check a model file against the embedded schema and report every
violation found, not just the first.

Example:
  colorelic validate model.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read model file", err)
	}

	violations := model.Check(data)

	report := validateReport{File: path, Valid: len(violations) == 0}
	for _, v := range violations {
		report.Violations = append(report.Violations, v.Error())
	}

	if opts.Format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		if report.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d violation(s)\n", path, len(violations))
			for _, v := range report.Violations {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", v)
			}
		}
	}

	if !report.Valid {
		return NewExitError(ExitFailure, "model file is invalid")
	}
	return nil
}
