package transform

import (
	"reflect"
	"strings"
)

// CollapseSpace trims s and replaces every run of whitespace, newlines
// included, with a single space. Multi-line descriptions written as Go raw
// strings come out as one line.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields and slices.
func StructTrimSpace(v any) {
	stringFunc(v, strings.TrimSpace)
}

// StructCollapseSpace runs [CollapseSpace] on all string fields in the struct recursively.
func StructCollapseSpace(v any) {
	stringFunc(v, CollapseSpace)
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Slice {
			for j := range field.Len() {
				apply(field.Index(j), f)
			}
			continue
		}
		apply(field, f)
	}
}

// apply rewrites a settable string, or walks into a struct or a non-nil
// pointer to one. Interface and map values are left alone.
func apply(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(f(v.String()))
	case reflect.Struct:
		stringFunc(v.Addr().Interface(), f)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		switch v.Elem().Kind() {
		case reflect.String:
			v.Elem().SetString(f(v.Elem().String()))
		case reflect.Struct:
			stringFunc(v.Interface(), f)
		}
	}
}
