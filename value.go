package modely

import (
	"reflect"
	"time"
)

// equalValue compares canonical values, models compare structurally and
// instants compare as moments in time.
func equalValue(value, other interface{}) bool {
	switch actual := value.(type) {
	case *Model:
		otherModel, ok := other.(*Model)
		if !ok {
			return false
		}
		return actual.Equal(otherModel)
	case []*Model:
		otherModels, ok := other.([]*Model)
		if !ok || len(actual) != len(otherModels) {
			return false
		}
		for i := range actual {
			if !actual[i].Equal(otherModels[i]) {
				return false
			}
		}
		return true
	case []interface{}:
		otherItems, ok := other.([]interface{})
		if !ok || len(actual) != len(otherItems) {
			return false
		}
		for i := range actual {
			if !equalValue(actual[i], otherItems[i]) {
				return false
			}
		}
		return true
	case time.Time:
		otherTime, ok := other.(time.Time)
		return ok && actual.Equal(otherTime)
	}
	return reflect.DeepEqual(value, other)
}
