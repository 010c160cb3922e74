// Package reflect_util provides small reflection helpers for struct fields.
package reflect_util

import "reflect"

// GetFields returns every struct field of the given type.
func GetFields(t reflect.Type) []reflect.StructField {
	num := t.NumField()
	fields := make([]reflect.StructField, 0, num)
	for i := 0; i < num; i++ {
		fields = append(fields, t.Field(i))
	}
	return fields
}
