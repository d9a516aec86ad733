package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume against the resume schema",
	Long: "Validate checks a resume file against the resume JSON schema, or against the schema file " +
		"given with --schema. With --fields it also runs the per-field rules and lists every finding.",
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateFields bool
	validateSchema string
)

func init() {
	validateCmd.Flags().BoolVar(&validateFields, "fields", false, "Also run the per-field rules")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Validate against this JSON schema file instead of the built-in resume schema")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := validateAgainstSchema(args[0], data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			printf(out, "Validation failed:\n")
			for _, fe := range validationErr.Errors {
				printf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}
	printf(out, "Validation passed: %s matches the %s\n", args[0], schemaLabel())

	if !validateFields {
		return nil
	}

	doc, _, err := ingestion.ParseResume(data, ingestion.Options{StrictSchema: true, Logger: logger})
	if err != nil {
		return err
	}
	problems := validation.Problems(validation.ValidateDocument(*doc))
	if len(problems) == 0 {
		printf(out, "All fields pass\n")
		return nil
	}

	invalid := 0
	printf(out, "Field findings:\n")
	for _, p := range problems {
		for _, e := range p.Result.Errors {
			printf(out, "  ✗ %s: %s\n", p.Path, e)
		}
		for _, w := range p.Result.Warnings {
			printf(out, "  ⚠ %s: %s\n", p.Path, w)
		}
		if !p.Result.IsValid {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d fields failed validation", invalid)
	}
	return nil
}

func validateAgainstSchema(path string, data []byte) error {
	if validateSchema == "" {
		return schemas.ValidateResume(data)
	}
	schemaPath := schemas.ResolveSchemaPath(validateSchema)
	if schemaPath == "" {
		return fmt.Errorf("schema file not found: %s", validateSchema)
	}
	logger.Debug("Validating against custom schema", zap.String("schema", schemaPath))
	return schemas.ValidateJSON(schemaPath, path)
}

func schemaLabel() string {
	if validateSchema == "" {
		return "resume schema"
	}
	return "schema " + validateSchema
}
