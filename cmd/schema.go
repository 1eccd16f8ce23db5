package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/QUAKO-CLOUDY/SeekEatz/pkg/config"
)

func init() {
	rootCmd.AddCommand(newSchemaCmd())
}

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the seekeatz config file",
		Long: `Writes the JSON schema describing seekeatz.toml / seekeatz.yml,
for IDE autocompletion when editing the config.

Example:
  seekeatz schema -o seekeatz.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "seekeatz.schema.json", "Output path, or - for stdout")

	return cmd
}

func runSchema(output string) error {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "toml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "SeekEatz Cleanup Configuration"
	schema.Description = "Schema for the seekeatz.toml / seekeatz.yml config file."

	// Every setting has a default; nothing is required.
	schema.Required = nil

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if output == "-" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}
