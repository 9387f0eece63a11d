package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/modely/encoding/wire"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check raw JSON records against a schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := resolveSchema()
		if err != nil {
			return err
		}
		failures, records := 0, 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			value, err := wire.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			var items []interface{}
			switch actual := value.(type) {
			case map[string]interface{}:
				items = []interface{}{actual}
			case []interface{}:
				items = actual
			default:
				return fmt.Errorf("%s: expected object or array but had %T", path, value)
			}
			for i, item := range items {
				records++
				record, ok := item.(map[string]interface{})
				if !ok {
					failures++
					fmt.Fprintf(os.Stderr, "%s#%d: expected object but had %T\n", path, i, item)
					continue
				}
				if _, err := schema.FromMap(record); err != nil {
					failures++
					fmt.Fprintf(os.Stderr, "%s#%d: %v\n", path, i, err)
				}
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d record(s) failed", failures, records)
		}
		fmt.Printf("OK, %d record(s) checked\n", records)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
