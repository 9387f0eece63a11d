package modely

import (
	"fmt"
)

// MarshalTable renders models as a compact tabular JSON array: the first row
// lists declared field names, each following row holds serial values in
// declaration order with nil for never assigned fields. Nested collections
// recurse into the same shape.
func (s *Schema) MarshalTable(models []*Model) ([]byte, error) {
	table, err := s.tableOf(models)
	if err != nil {
		return nil, err
	}
	return defaultCodec.Encode(table)
}

func (s *Schema) tableOf(models []*Model) ([]interface{}, error) {
	header := make([]interface{}, 0, s.fields.Len())
	for _, field := range s.fields.Items {
		header = append(header, field.name)
	}
	ret := make([]interface{}, 0, 1+len(models))
	ret = append(ret, header)
	for i, model := range models {
		if model.schema != s {
			return nil, fmt.Errorf("row %d: expected %v but had %v: %w", i, s.name, model.schema.name, ErrSchemaMismatch)
		}
		row := make([]interface{}, 0, len(header))
		for _, field := range s.fields.Items {
			value, ok := model.values[field.name]
			if !ok {
				row = append(row, nil)
				continue
			}
			cell, err := cellOf(field, value)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row = append(row, cell)
		}
		ret = append(ret, row)
	}
	return ret, nil
}

func cellOf(field *Field, value interface{}) (interface{}, error) {
	if field.kind == KindNestedSlice {
		if models, ok := value.([]*Model); ok {
			return field.schema.tableOf(models)
		}
	}
	return field.Serial(value)
}

// FromTable rebuilds models from the tabular JSON shape produced by
// MarshalTable, header names are matched against declared field names.
func (s *Schema) FromTable(data []byte) ([]*Model, error) {
	table, err := defaultCodec.DecodeArray(data)
	if err != nil {
		return nil, err
	}
	return s.modelsOf(table)
}

func (s *Schema) modelsOf(table []interface{}) ([]*Model, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("missing header row for %v", s.name)
	}
	headerRow, ok := table[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected header row but had %T: %w", table[0], ErrTypeMismatch)
	}
	header := make([]string, 0, len(headerRow))
	for _, item := range headerRow {
		name, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected header name but had %T: %w", item, ErrTypeMismatch)
		}
		header = append(header, name)
	}
	ret := make([]*Model, 0, len(table)-1)
	for i, item := range table[1:] {
		row, ok := item.([]interface{})
		if !ok {
			return nil, fmt.Errorf("row %d: expected values but had %T: %w", i, item, ErrTypeMismatch)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d values but had %d", i, len(header), len(row))
		}
		model := s.NewModel()
		for j, name := range header {
			cell := row[j]
			if cell == nil {
				continue
			}
			field := s.Lookup(name)
			if field == nil {
				continue
			}
			raw, err := rawOf(field, cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			if err := model.Set(name, raw); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		ret = append(ret, model)
	}
	return ret, nil
}

func rawOf(field *Field, cell interface{}) (interface{}, error) {
	if field.kind == KindNestedSlice {
		if table, ok := cell.([]interface{}); ok && len(table) > 0 {
			if _, nested := table[0].([]interface{}); nested {
				return field.schema.modelsOf(table)
			}
		}
	}
	return cell, nil
}
