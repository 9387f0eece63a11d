// Package schemadef builds schemas from declarative YAML definitions and
// renders schemas back into the same form.
package schemadef

import (
	"fmt"
	"os"

	"github.com/viant/modely"
	"gopkg.in/yaml.v3"
)

// Definition is the document shape of a schema.
type Definition struct {
	Name   string      `yaml:"name"`
	Fields []*FieldDef `yaml:"fields"`
}

// FieldDef is the document shape of a single field.
type FieldDef struct {
	Name         string      `yaml:"name,omitempty"`
	Type         string      `yaml:"type"`
	Source       string      `yaml:"source,omitempty"`
	Layout       string      `yaml:"layout,omitempty"`
	SerialLayout string      `yaml:"serialLayout,omitempty"`
	Nullable     bool        `yaml:"nullable,omitempty"`
	Default      interface{} `yaml:"default,omitempty"`
	Schema       *Definition `yaml:"schema,omitempty"`
	Item         *FieldDef   `yaml:"item,omitempty"`
}

// Load reads a YAML definition file and builds its schema.
func Load(path string) (*modely.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema definition %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a schema from YAML definition data.
func Parse(data []byte) (*modely.Schema, error) {
	definition := &Definition{}
	if err := yaml.Unmarshal(data, definition); err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}
	return definition.Schema()
}

// Describe renders a schema back into YAML definition data.
func Describe(schema *modely.Schema) ([]byte, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema was nil")
	}
	return yaml.Marshal(definitionOf(schema))
}

// Schema builds the schema the definition describes.
func (d *Definition) Schema() (*modely.Schema, error) {
	var fields []*modely.Field
	for _, def := range d.Fields {
		field, err := def.field()
		if err != nil {
			return nil, fmt.Errorf("%v.%v: %w", d.Name, def.Name, err)
		}
		fields = append(fields, field)
	}
	return modely.NewSchema(d.Name, fields...), nil
}

func (d *FieldDef) field() (*modely.Field, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("field name was empty")
	}
	kind, ok := modely.KindOf(d.Type)
	if !ok {
		return nil, fmt.Errorf("unknown field type %q", d.Type)
	}
	opts := d.options()
	switch kind {
	case modely.KindAny:
		return modely.NewAny(d.Name, opts...), nil
	case modely.KindString:
		return modely.NewString(d.Name, opts...), nil
	case modely.KindInt:
		return modely.NewInt(d.Name, opts...), nil
	case modely.KindFloat:
		return modely.NewFloat(d.Name, opts...), nil
	case modely.KindBool:
		return modely.NewBool(d.Name, opts...), nil
	case modely.KindDateTime:
		return modely.NewDateTime(d.Name, d.Layout, opts...), nil
	case modely.KindDate:
		return modely.NewDate(d.Name, d.Layout, opts...), nil
	case modely.KindTime:
		return modely.NewTime(d.Name, d.Layout, opts...), nil
	case modely.KindTimestamp:
		return modely.NewTimestamp(d.Name, opts...), nil
	case modely.KindDuration:
		return modely.NewDuration(d.Name, opts...), nil
	case modely.KindNested, modely.KindNestedSlice:
		if d.Schema == nil {
			return nil, fmt.Errorf("field type %q requires a schema", d.Type)
		}
		nested, err := d.Schema.Schema()
		if err != nil {
			return nil, err
		}
		if kind == modely.KindNested {
			return modely.NewNested(d.Name, nested, opts...), nil
		}
		return modely.NewNestedSlice(d.Name, nested, opts...), nil
	case modely.KindRepeated:
		if d.Item == nil {
			return nil, fmt.Errorf("field type %q requires an item", d.Type)
		}
		item := *d.Item
		if item.Name == "" {
			item.Name = d.Name
		}
		itemField, err := item.field()
		if err != nil {
			return nil, err
		}
		return modely.NewRepeated(d.Name, itemField, opts...), nil
	}
	return nil, fmt.Errorf("unsupported field type %q", d.Type)
}

func (d *FieldDef) options() []modely.FieldOption {
	var opts []modely.FieldOption
	if d.Source != "" {
		opts = append(opts, modely.WithSource(d.Source))
	}
	if d.Nullable {
		opts = append(opts, modely.WithNullable())
	}
	if d.Default != nil {
		opts = append(opts, modely.WithDefault(d.Default))
	}
	if d.SerialLayout != "" {
		opts = append(opts, modely.WithSerialLayout(d.SerialLayout))
	}
	return opts
}

func definitionOf(schema *modely.Schema) *Definition {
	ret := &Definition{Name: schema.Name()}
	schema.Fields().Each(func(field *modely.Field) {
		ret.Fields = append(ret.Fields, fieldDefOf(field))
	})
	return ret
}

func fieldDefOf(field *modely.Field) *FieldDef {
	ret := &FieldDef{
		Name:         field.Name(),
		Type:         field.Kind().String(),
		Layout:       field.Layout(),
		SerialLayout: field.SerialLayout(),
		Nullable:     field.Nullable(),
		Default:      field.Default(),
	}
	if source := field.Source(); source != field.Name() {
		ret.Source = source
	}
	if nested := field.Schema(); nested != nil {
		ret.Schema = definitionOf(nested)
	}
	if item := field.Item(); item != nil {
		ret.Item = fieldDefOf(item)
		if ret.Item.Name == field.Name() {
			ret.Item.Name = ""
		}
	}
	return ret
}
