package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/modely/schemadef"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the effective schema definition as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := resolveSchema()
		if err != nil {
			return err
		}
		output, err := schemadef.Describe(schema)
		if err != nil {
			return err
		}
		fmt.Print(string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
