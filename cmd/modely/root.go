package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/modely"
	"github.com/viant/modely/openapi"
	"github.com/viant/modely/schemadef"
)

var (
	schemaPath  string
	openapiPath string
	component   string
)

var rootCmd = &cobra.Command{
	Use:   "modely",
	Short: "Modely: declarative mapping between raw records and typed models",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Path to YAML schema definition")
	rootCmd.PersistentFlags().StringVar(&openapiPath, "openapi", "", "Path to OpenAPI document, alternative to --schema")
	rootCmd.PersistentFlags().StringVar(&component, "component", "", "OpenAPI component schema name")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSchema loads the schema the flags point at.
func resolveSchema() (*modely.Schema, error) {
	if openapiPath != "" {
		doc, err := openapi.Load(openapiPath)
		if err != nil {
			return nil, err
		}
		if component == "" {
			return nil, fmt.Errorf("--component is required with --openapi, available: %v", doc.Components())
		}
		return doc.Schema(component)
	}
	if schemaPath == "" {
		return nil, fmt.Errorf("--schema or --openapi is required")
	}
	return schemadef.Load(schemaPath)
}
