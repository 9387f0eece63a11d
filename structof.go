package modely

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/viant/modely/conv"
	"github.com/viant/modely/tags"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

type (
	//binding joins schema fields with a struct layout
	binding struct {
		rType   reflect.Type
		xStruct *xunsafe.Struct
		entries []*bindingEntry
	}

	bindingEntry struct {
		field  *Field
		xField *xunsafe.Field
	}

	bindingKey struct {
		schema *Schema
		rType  reflect.Type
	}
)

var schemaCache sync.Map

var bindingCache sync.Map

// SchemaOf derives a schema from a struct type, the modely tag controls
// naming and conversion details and the format tag supplies time layouts.
// Bare calls are cached per struct type.
func SchemaOf(target interface{}, opts ...SchemaOption) (*Schema, error) {
	rType := reflect.TypeOf(target)
	if rType == nil {
		return nil, fmt.Errorf("target was nil")
	}
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("expected struct but had %s", rType.String())
	}
	if len(opts) == 0 {
		if cached, ok := schemaCache.Load(structType); ok {
			return cached.(*Schema), nil
		}
	}
	options := &schemaOptions{}
	options.apply(opts)
	ret, err := schemaOf(structType, options)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		schemaCache.Store(structType, ret)
	}
	return ret, nil
}

func schemaOf(structType reflect.Type, options *schemaOptions) (*Schema, error) {
	ret := &Schema{name: structType.Name(), fields: newFields()}
	for i := 0; i < structType.NumField(); i++ {
		rField := structType.Field(i)
		if rField.PkgPath != "" {
			continue
		}
		field, err := fieldOf(structType, rField, options)
		if err != nil {
			return nil, err
		}
		if field == nil {
			continue
		}
		ret.fields.Add(field)
	}
	return ret, nil
}

func fieldOf(owner reflect.Type, rField reflect.StructField, options *schemaOptions) (*Field, error) {
	tag, err := tags.Parse(rField.Tag)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", owner.Name(), rField.Name, err)
	}
	if tag.Ignore {
		return nil, nil
	}
	formatTag, _ := format.Parse(rField.Tag)
	if formatTag == nil {
		formatTag = &format.Tag{}
	}
	name := rField.Name
	if tag.Name != "" {
		name = tag.Name
	} else if formatTag.Name != "" {
		name = formatTag.Name
	}
	layout := layoutOf(tag, formatTag)

	rType := rField.Type
	nullable := tag.Nullable
	if rType.Kind() == reflect.Ptr {
		nullable = true
		rType = rType.Elem()
	}
	field, err := kindedField(owner, name, rType, layout, options)
	if err != nil || field == nil {
		return nil, err
	}
	field.source = sourceOf(rField.Name, tag, formatTag, options)
	field.nullable = nullable
	field.serialLayout = tag.SerialLayout
	if tag.HasDefault {
		field.defaultValue = tag.Default
	}
	return field, nil
}

func kindedField(owner reflect.Type, name string, rType reflect.Type, layout string, options *schemaOptions) (*Field, error) {
	switch {
	case rType == timeType:
		return NewDateTime(name, layout), nil
	case rType == durationType:
		return NewDuration(name), nil
	}
	switch rType.Kind() {
	case reflect.String:
		return NewString(name), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInt(name), nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(name), nil
	case reflect.Bool:
		return NewBool(name), nil
	case reflect.Interface, reflect.Map:
		return NewAny(name), nil
	case reflect.Struct:
		if rType == owner {
			return nil, nil
		}
		nested, err := schemaOf(rType, options)
		if err != nil {
			return nil, err
		}
		return NewNested(name, nested), nil
	case reflect.Slice:
		return slicedField(owner, name, rType, layout, options)
	}
	return nil, nil
}

func slicedField(owner reflect.Type, name string, rType reflect.Type, layout string, options *schemaOptions) (*Field, error) {
	elemType := rType.Elem()
	if elemType.Kind() == reflect.Uint8 {
		return NewAny(name), nil
	}
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if structType := ensureStruct(elemType); structType != nil && !isTimeType(structType) {
		if structType == owner {
			return nil, nil
		}
		nested, err := schemaOf(structType, options)
		if err != nil {
			return nil, err
		}
		return NewNestedSlice(name, nested), nil
	}
	item, err := kindedField(owner, name, elemType, layout, options)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = NewAny(name)
	}
	return NewRepeated(name, item), nil
}

func layoutOf(tag *tags.Tag, formatTag *format.Tag) string {
	if tag.Layout != "" {
		return tag.Layout
	}
	if formatTag.TimeLayout != "" {
		return formatTag.TimeLayout
	}
	if formatTag.DateFormat != "" {
		return ftime.DateFormatToTimeLayout(formatTag.DateFormat)
	}
	return ""
}

func sourceOf(fieldName string, tag *tags.Tag, formatTag *format.Tag, options *schemaOptions) string {
	if tag.Source != "" {
		return tag.Source
	}
	caseFormat := options.sourceCaseFormat
	if !caseFormat.IsDefined() {
		if cf := text.CaseFormat(formatTag.CaseFormat); cf != "" && cf != "-" {
			caseFormat = cf
		}
	}
	if !caseFormat.IsDefined() {
		return ""
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}

func (s *Schema) bindingFor(rType reflect.Type) (*binding, error) {
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("expected struct but had %s", rType.String())
	}
	key := bindingKey{schema: s, rType: structType}
	if cached, ok := bindingCache.Load(key); ok {
		return cached.(*binding), nil
	}
	ret := &binding{rType: structType, xStruct: xunsafe.NewStruct(structType)}
	index := map[string]*Field{}
	for _, field := range s.fields.Items {
		index[strings.ToLower(field.name)] = field
	}
	for i := 0; i < structType.NumField(); i++ {
		rField := structType.Field(i)
		if rField.PkgPath != "" {
			continue
		}
		tag, err := tags.Parse(rField.Tag)
		if err != nil || tag.Ignore {
			continue
		}
		candidate := rField.Name
		if tag.Name != "" {
			candidate = tag.Name
		}
		field, ok := index[strings.ToLower(candidate)]
		if !ok {
			continue
		}
		ret.entries = append(ret.entries, &bindingEntry{field: field, xField: &ret.xStruct.Fields[i]})
	}
	bindingCache.Store(key, ret)
	return ret, nil
}

// FromStruct builds a model reading values from a struct, fields are matched
// by modely tag name or Go field name.
func (s *Schema) FromStruct(target interface{}) (*Model, error) {
	if target == nil {
		return nil, fmt.Errorf("target was nil")
	}
	rType := reflect.TypeOf(target)
	if rType.Kind() == reflect.Ptr && reflect.ValueOf(target).IsNil() {
		return nil, fmt.Errorf("target was nil")
	}
	bind, err := s.bindingFor(rType)
	if err != nil {
		return nil, err
	}
	ptr := xunsafe.AsPointer(target)
	ret := s.NewModel()
	for _, entry := range bind.entries {
		raw, skip, err := structValue(entry.field, entry.xField.Value(ptr))
		if err != nil {
			return nil, fmt.Errorf("unable to read %s.%s: %w", bind.rType.Name(), entry.xField.Name, err)
		}
		if skip {
			continue
		}
		if err := ret.Set(entry.field.name, raw); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func structValue(field *Field, raw interface{}) (interface{}, bool, error) {
	rValue := reflect.ValueOf(raw)
	if !rValue.IsValid() {
		return nil, true, nil
	}
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, true, nil
		}
		raw = rValue.Elem().Interface()
	}
	switch field.kind {
	case KindNested:
		model, err := field.schema.FromStruct(raw)
		if err != nil {
			return nil, false, err
		}
		return model, false, nil
	case KindNestedSlice:
		items, err := asSlice(raw)
		if err != nil {
			return nil, false, err
		}
		models := make([]*Model, 0, len(items))
		for _, item := range items {
			elem := reflect.ValueOf(item)
			if elem.Kind() == reflect.Ptr {
				if elem.IsNil() {
					continue
				}
			}
			model, err := field.schema.FromStruct(item)
			if err != nil {
				return nil, false, err
			}
			models = append(models, model)
		}
		return models, false, nil
	}
	return raw, false, nil
}

// Into writes present field values into a struct, target must be a non nil
// struct pointer. Never assigned fields leave the destination untouched.
func (m *Model) Into(target interface{}) error {
	if target == nil {
		return fmt.Errorf("target was nil")
	}
	rType := reflect.TypeOf(target)
	if rType.Kind() != reflect.Ptr || ensureStruct(rType) == nil {
		return fmt.Errorf("expected struct pointer but had %s", rType.String())
	}
	if reflect.ValueOf(target).IsNil() {
		return fmt.Errorf("target was nil")
	}
	bind, err := m.schema.bindingFor(rType)
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(target)
	for _, entry := range bind.entries {
		value, ok := m.values[entry.field.name]
		if !ok || value == nil {
			continue
		}
		if err := setStructValue(entry.xField, ptr, entry.field, value); err != nil {
			return fmt.Errorf("unable to set %s.%s: %w", bind.rType.Name(), entry.xField.Name, err)
		}
	}
	return nil
}

func setStructValue(xField *xunsafe.Field, ptr unsafe.Pointer, field *Field, value interface{}) error {
	switch xField.Type.Kind() {
	case reflect.String:
		if xField.Type == reflect.TypeOf("") {
			str, err := conv.String(value)
			if err != nil {
				return err
			}
			xField.SetString(ptr, str)
			return nil
		}
	case reflect.Int:
		if xField.Type == reflect.TypeOf(0) {
			i, err := conv.Int(value)
			if err != nil {
				return err
			}
			xField.SetInt(ptr, i)
			return nil
		}
	case reflect.Bool:
		if xField.Type == reflect.TypeOf(true) {
			b, err := conv.Bool(value)
			if err != nil {
				return err
			}
			xField.SetBool(ptr, b)
			return nil
		}
	case reflect.Float64:
		if xField.Type == reflect.TypeOf(0.0) {
			f, err := conv.Float64(value)
			if err != nil {
				return err
			}
			xField.SetFloat64(ptr, f)
			return nil
		}
	}
	converted, err := valueFor(xField.Type, field, value)
	if err != nil {
		return err
	}
	xField.SetValue(ptr, converted.Interface())
	return nil
}

func valueFor(destType reflect.Type, field *Field, value interface{}) (reflect.Value, error) {
	if destType.Kind() == reflect.Ptr {
		elem, err := valueFor(destType.Elem(), field, value)
		if err != nil {
			return reflect.Value{}, err
		}
		ret := reflect.New(destType.Elem())
		ret.Elem().Set(elem)
		return ret, nil
	}
	switch {
	case destType == timeType:
		at, err := conv.Time(value, field.layout)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(at), nil
	case destType == durationType:
		elapsed, err := durationOf(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(elapsed), nil
	}
	switch destType.Kind() {
	case reflect.Interface:
		if value == nil {
			return reflect.Zero(destType), nil
		}
		return reflect.ValueOf(value), nil
	case reflect.String:
		str, err := conv.String(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(str).Convert(destType), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := conv.Int64(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(i).Convert(destType), nil
	case reflect.Float32, reflect.Float64:
		f, err := conv.Float64(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(destType), nil
	case reflect.Bool:
		b, err := conv.Bool(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b).Convert(destType), nil
	case reflect.Struct:
		if model, ok := value.(*Model); ok {
			ret := reflect.New(destType)
			if err := model.Into(ret.Interface()); err != nil {
				return reflect.Value{}, err
			}
			return ret.Elem(), nil
		}
	case reflect.Slice:
		items, err := asSlice(value)
		if err != nil {
			return reflect.Value{}, err
		}
		ret := reflect.MakeSlice(destType, 0, len(items))
		elemField := field
		if field.kind == KindRepeated && field.item != nil {
			elemField = field.item
		}
		for _, item := range items {
			elem, err := valueFor(destType.Elem(), elemField, item)
			if err != nil {
				return reflect.Value{}, err
			}
			ret = reflect.Append(ret, elem)
		}
		return ret, nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.IsValid() && rValue.Type().ConvertibleTo(destType) {
		return rValue.Convert(destType), nil
	}
	return reflect.Value{}, fmt.Errorf("unable to convert %T to %s: %w", value, destType.String(), ErrTypeMismatch)
}
