package modely

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

var durationType = reflect.TypeOf(time.Duration(0))

func isTimeType(candidate reflect.Type) bool {
	return ensureStruct(candidate) == timeType
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
