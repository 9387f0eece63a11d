package modely

// Fields is an insertion ordered field registry.
type Fields struct {
	Map   map[string]int
	Items []*Field
}

// Lookup returns a field by name or nil.
func (f Fields) Lookup(name string) *Field {
	index, ok := f.Map[name]
	if !ok {
		return nil
	}
	return f.Items[index]
}

// Add registers a field, re-adding a name replaces the field in place so the
// original position is kept.
func (f *Fields) Add(field *Field) {
	if index, ok := f.Map[field.Name()]; ok {
		f.Items[index] = field
		return
	}
	f.Map[field.Name()] = len(f.Items)
	f.Items = append(f.Items, field)
}

// Each visits fields in registration order.
func (f Fields) Each(cb func(field *Field)) {
	for _, item := range f.Items {
		cb(item)
	}
}

// Len returns the number of registered fields.
func (f Fields) Len() int {
	return len(f.Items)
}

func newFields() Fields {
	return Fields{Map: make(map[string]int)}
}
