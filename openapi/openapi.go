// Package openapi derives schemas from OpenAPI 3 component definitions.
package openapi

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/viant/modely"
)

// Document wraps a loaded OpenAPI 3 document.
type Document struct {
	spec *openapi3.T
}

// Load reads and resolves an OpenAPI document from a file.
func Load(path string) (*Document, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document %s: %w", path, err)
	}
	return &Document{spec: spec}, nil
}

// LoadData parses and resolves an OpenAPI document from raw bytes.
func LoadData(data []byte) (*Document, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// Components lists the component schema names.
func (d *Document) Components() []string {
	if d.spec.Components == nil {
		return nil
	}
	ret := make([]string, 0, len(d.spec.Components.Schemas))
	for name := range d.spec.Components.Schemas {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Schema derives a schema from the named component. Properties are ordered
// alphabetically since the document form carries no declaration order.
func (d *Document) Schema(component string) (*modely.Schema, error) {
	if d.spec.Components == nil {
		return nil, fmt.Errorf("document has no component schemas")
	}
	ref, ok := d.spec.Components.Schemas[component]
	if !ok {
		return nil, fmt.Errorf("unknown component schema %q", component)
	}
	if ref.Value == nil {
		return nil, fmt.Errorf("unresolved component schema %q", component)
	}
	return schemaOf(component, ref.Value, map[*openapi3.Schema]bool{})
}

func schemaOf(name string, src *openapi3.Schema, trail map[*openapi3.Schema]bool) (*modely.Schema, error) {
	if trail[src] {
		return nil, fmt.Errorf("cyclic schema reference at %q", name)
	}
	trail[src] = true
	defer delete(trail, src)

	names := make([]string, 0, len(src.Properties))
	for propertyName := range src.Properties {
		names = append(names, propertyName)
	}
	sort.Strings(names)

	var fields []*modely.Field
	for _, propertyName := range names {
		field, err := fieldOf(propertyName, src.Properties[propertyName], isRequired(src, propertyName), trail)
		if err != nil {
			return nil, fmt.Errorf("%v.%v: %w", name, propertyName, err)
		}
		fields = append(fields, field)
	}
	return modely.NewSchema(name, fields...), nil
}

func isRequired(src *openapi3.Schema, name string) bool {
	for _, candidate := range src.Required {
		if candidate == name {
			return true
		}
	}
	return false
}

func fieldOf(name string, ref *openapi3.SchemaRef, required bool, trail map[*openapi3.Schema]bool) (*modely.Field, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("unresolved property schema")
	}
	src := ref.Value
	typeName, nullable := typeOf(src)
	var opts []modely.FieldOption
	if nullable || !required {
		opts = append(opts, modely.WithNullable())
	}
	if src.Default != nil {
		opts = append(opts, modely.WithDefault(src.Default))
	}
	switch typeName {
	case "string":
		switch src.Format {
		case "date":
			return modely.NewDate(name, "2006-01-02", opts...), nil
		case "date-time":
			return modely.NewDateTime(name, time.RFC3339, opts...), nil
		case "duration":
			return modely.NewDuration(name, opts...), nil
		}
		return modely.NewString(name, opts...), nil
	case "integer":
		if src.Format == "unix-time" {
			return modely.NewTimestamp(name, opts...), nil
		}
		return modely.NewInt(name, opts...), nil
	case "number":
		return modely.NewFloat(name, opts...), nil
	case "boolean":
		return modely.NewBool(name, opts...), nil
	case "object", "":
		if len(src.Properties) == 0 {
			return modely.NewAny(name, opts...), nil
		}
		nested, err := schemaOf(nestedName(name, ref), src, trail)
		if err != nil {
			return nil, err
		}
		return modely.NewNested(name, nested, opts...), nil
	case "array":
		return arrayField(name, src, opts, trail)
	}
	return nil, fmt.Errorf("unsupported schema type %q: %w", typeName, modely.ErrTypeMismatch)
}

func arrayField(name string, src *openapi3.Schema, opts []modely.FieldOption, trail map[*openapi3.Schema]bool) (*modely.Field, error) {
	if src.Items == nil || src.Items.Value == nil {
		return modely.NewRepeated(name, modely.NewAny(name), opts...), nil
	}
	items := src.Items.Value
	itemType, _ := typeOf(items)
	if (itemType == "object" || itemType == "") && len(items.Properties) > 0 {
		nested, err := schemaOf(nestedName(name, src.Items), items, trail)
		if err != nil {
			return nil, err
		}
		return modely.NewNestedSlice(name, nested, opts...), nil
	}
	item, err := fieldOf(name, src.Items, true, trail)
	if err != nil {
		return nil, err
	}
	return modely.NewRepeated(name, item, opts...), nil
}

// typeOf extracts the single concrete type, folding a 3.1 style "null" entry
// into nullability instead of treating it as a type.
func typeOf(src *openapi3.Schema) (string, bool) {
	nullable := src.Nullable
	if src.Type == nil {
		return "", nullable
	}
	ret := ""
	for _, candidate := range src.Type.Slice() {
		if candidate == "null" {
			nullable = true
			continue
		}
		if ret == "" {
			ret = candidate
		}
	}
	return ret, nullable
}

// nestedName prefers the referenced component name over the property name.
func nestedName(name string, ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Ref == "" {
		return name
	}
	parts := strings.Split(ref.Ref, "/")
	return parts[len(parts)-1]
}
