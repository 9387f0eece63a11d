package modely

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
)

// Query evaluates a JSONPath expression against the serial projection.
func (m *Model) Query(path string) ([]interface{}, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	serial, err := m.Serial()
	if err != nil {
		return nil, err
	}
	return x.Get(serial), nil
}
