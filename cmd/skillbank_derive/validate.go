package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/skillbank-derive/internal/bank"
	"github.com/jonathan/skillbank-derive/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a skill bank snapshot file",
	Long:  "Validates a skill bank JSON snapshot against the skill bank schema and the structural invariants (unique ids, consistent variation flags).",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to skill bank JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	// Schema first, for field-level messages on malformed documents
	if err := schemas.ValidateSkillBank(validateInputFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprint(os.Stderr, validationErr.Error())
			return fmt.Errorf("skill bank snapshot failed schema validation")
		}
		return err
	}

	// Then the structural invariants the schema cannot express
	if _, err := bank.LoadSkillBank(validateInputFile); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Skill bank snapshot is valid\n")
	_, _ = fmt.Fprintf(os.Stdout, "Input: %s\n", validateInputFile)

	return nil
}
