package deco

import (
	"fmt"
	"reflect"
	"strings"
)

// Arg is one named argument of a call, produced by binding an input
// value to its declared parameter names.
type Arg struct {
	Name  string
	Value any
}

// bindArgs maps an input value to named arguments. A struct (or
// pointer to struct) binds each exported field in declaration order;
// anything else binds as a single argument named "in".
func bindArgs(v any) []Arg {
	return bindNamed(v, "in")
}

func bindNamed(v any, fallback string) []Arg {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.IsValid() && rv.Kind() == reflect.Struct {
		t := rv.Type()
		args := make([]Arg, 0, t.NumField())
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			args = append(args, Arg{Name: f.Name, Value: rv.Field(i).Interface()})
		}
		return args
	}
	return []Arg{{Name: fallback, Value: v}}
}

// argNames lists the argument names a value of type T binds to,
// without needing a value. Used to validate configured argument names
// at decoration time.
func argNames[T any]() []string {
	return typeNames[T]("in")
}

func typeNames[T any](fallback string) []string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		names := make([]string, 0, t.NumField())
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			names = append(names, f.Name)
		}
		return names
	}
	return []string{fallback}
}

// formatArgs renders bound arguments as "a=1, b=2".
func formatArgs(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s=%v", a.Name, a.Value)
	}
	return strings.Join(parts, ", ")
}
