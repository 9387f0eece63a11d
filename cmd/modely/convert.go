package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/modely"
	"github.com/viant/modely/encoding/wire"
)

var (
	inputPath string
	indent    int
	asTable   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert raw JSON records into their serial projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := resolveSchema()
		if err != nil {
			return err
		}
		data, err := readInput()
		if err != nil {
			return err
		}
		models, batch, err := decodeModels(schema, data)
		if err != nil {
			return err
		}
		output, err := renderModels(schema, models, batch)
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input JSON file, stdin when omitted")
	convertCmd.Flags().IntVar(&indent, "indent", 0, "Output indent width")
	convertCmd.Flags().BoolVar(&asTable, "table", false, "Emit the compact tabular form")
	rootCmd.AddCommand(convertCmd)
}

func readInput() ([]byte, error) {
	if inputPath == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputPath)
}

// decodeModels builds models from a top level object or an array of objects.
func decodeModels(schema *modely.Schema, data []byte) ([]*modely.Model, bool, error) {
	value, err := wire.Decode(data)
	if err != nil {
		return nil, false, err
	}
	switch actual := value.(type) {
	case map[string]interface{}:
		model, err := schema.FromMap(actual)
		if err != nil {
			return nil, false, err
		}
		return []*modely.Model{model}, false, nil
	case []interface{}:
		models := make([]*modely.Model, 0, len(actual))
		for i, item := range actual {
			record, ok := item.(map[string]interface{})
			if !ok {
				return nil, false, fmt.Errorf("record %d: expected object but had %T", i, item)
			}
			model, err := schema.FromMap(record)
			if err != nil {
				return nil, false, fmt.Errorf("record %d: %w", i, err)
			}
			models = append(models, model)
		}
		return models, true, nil
	}
	return nil, false, fmt.Errorf("expected object or array but had %T", value)
}

// renderModels keeps the input arity: one object in, one object out.
func renderModels(schema *modely.Schema, models []*modely.Model, batch bool) ([]byte, error) {
	if asTable {
		return schema.MarshalTable(models)
	}
	var opts []wire.Option
	if indent > 0 {
		opts = append(opts, wire.WithIndent(indent))
	}
	codec := wire.New(opts...)
	if !batch {
		serial, err := models[0].Serial()
		if err != nil {
			return nil, err
		}
		return codec.Encode(serial)
	}
	rows := make([]interface{}, 0, len(models))
	for _, model := range models {
		serial, err := model.Serial()
		if err != nil {
			return nil, err
		}
		rows = append(rows, serial)
	}
	return codec.Encode(rows)
}
