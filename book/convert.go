// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"reflect"
	"sort"

	"jsouthworth.net/go/try"
)

// BookFrom converts a plain record value into a Book whose schema is
// exactly the record's field names and types. The record decomposes
// into one singleton Book per field and the singletons are combined
// by disjoint union, which re-sorts, so the record's declaration
// order need not be canonical. Field names honor a `book:"name"`
// struct tag; `book:"-"` omits the field; unexported fields are
// skipped. Pointers to records are dereferenced.
//
// Only a genuine product of named fields converts. A sum shape (an
// interface, go's variant idiom) and any non-record shape, including
// the fieldless struct, are rejected with a ShapeError naming the
// specific reason.
func BookFrom(in interface{}) (*Book, error) {
	out, err := try.Apply(MustBookFrom, in)
	if err != nil {
		return nil, err
	}
	return out.(*Book), nil
}

// MustBookFrom behaves as BookFrom but panics on unconvertible
// shapes. The panic carries the ShapeError and may be recovered with
// try.Apply.
func MustBookFrom(in interface{}) *Book {
	rv, t := recordShape(in)
	if !rv.IsValid() {
		panic(&ShapeError{Type: t, Reason: reasonNonRecord})
	}
	out := BookNew()
	for i := 0; i < t.NumField(); i++ {
		name, ok := fieldName(t.Field(i))
		if !ok {
			continue
		}
		out = out.MustUnion(
			BookWith(F(name, rv.Field(i).Interface())))
	}
	return out
}

// SchemaOf derives the Schema a conversion of in would produce,
// without building the Book. It accepts a record value, a pointer to
// one, or a reflect.Type, and applies the same shape rules as
// BookFrom.
func SchemaOf(in interface{}) (Schema, error) {
	out, err := try.Apply(MustSchemaOf, in)
	if err != nil {
		return nil, err
	}
	return out.(Schema), nil
}

// MustSchemaOf behaves as SchemaOf but panics on unconvertible
// shapes.
func MustSchemaOf(in interface{}) Schema {
	_, t := recordShape(in)
	out := make(Schema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		out = append(out, FieldType{Name: name, Type: sf.Type})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	for i := 1; i < len(out); i++ {
		if out[i].Name == out[i-1].Name {
			panic(&DuplicateFieldError{Field: K(out[i].Name)})
		}
	}
	return out
}

// recordShape resolves in to a record-shaped type, panicking with a
// ShapeError for anything that is not a product of named fields. The
// returned value is invalid when only a type was supplied or the
// pointer chain ended in nil.
func recordShape(in interface{}) (reflect.Value, reflect.Type) {
	if in == nil {
		panic(&ShapeError{Reason: reasonNonRecord})
	}
	var rv reflect.Value
	var t reflect.Type
	switch v := in.(type) {
	case reflect.Type:
		t = v
	default:
		rv = reflect.ValueOf(in)
		t = rv.Type()
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
		if rv.IsValid() {
			if rv.IsNil() {
				rv = reflect.Value{}
			} else {
				rv = rv.Elem()
			}
		}
	}
	switch t.Kind() {
	case reflect.Interface:
		panic(&ShapeError{Type: t, Reason: reasonSumType})
	case reflect.Struct:
	default:
		panic(&ShapeError{Type: t, Reason: reasonNonRecord})
	}
	var n int
	for i := 0; i < t.NumField(); i++ {
		if _, ok := fieldName(t.Field(i)); ok {
			n++
		}
	}
	if n == 0 {
		// The unit analogue, a struct with no convertible
		// fields, is not a record either.
		panic(&ShapeError{Type: t, Reason: reasonNonRecord})
	}
	return rv, t
}

func fieldName(sf reflect.StructField) (string, bool) {
	if sf.PkgPath != "" {
		return "", false
	}
	switch tag := sf.Tag.Get("book"); tag {
	case "":
		return sf.Name, true
	case "-":
		return "", false
	default:
		return tag, true
	}
}
