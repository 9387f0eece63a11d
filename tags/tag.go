// Package tags decodes the modely struct tag used to derive field schemas
// from Go struct types.
package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag consulted when deriving schemas.
const TagName = "modely"

// Tag holds the decoded modely struct tag, e.g.
// `modely:"userName,source=user_name,default='n/a',nullable,layout=2006-01-02"`.
type Tag struct {
	Name         string
	Source       string
	Default      string
	HasDefault   bool
	Nullable     bool
	Layout       string
	SerialLayout string
	Ignore       bool
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "source":
		t.Source = value
	case "default":
		t.Default = value
		t.HasDefault = true
	case "nullable", "null":
		t.Nullable = true
	case "layout":
		t.Layout = value
	case "seriallayout", "outputlayout":
		t.SerialLayout = value
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if t.Name == "" && value == "" {
			t.Name = key
			return nil
		}
		return fmt.Errorf("unknown modely tag option %q", key)
	}
	return nil
}

// Parse decodes the modely tag, an absent tag yields the zero value.
func Parse(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	encoded := tag.Get(TagName)
	if encoded == "" {
		return ret, nil
	}
	if encoded == "-" {
		ret.Ignore = true
		return ret, nil
	}
	err := Values(encoded).MatchPairs(ret.update)
	if err != nil {
		return nil, err
	}
	return ret, nil
}
