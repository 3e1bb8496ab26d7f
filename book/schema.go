// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"bytes"
	"reflect"
)

// FieldType is one entry of a Schema: a field name and the concrete
// type bound to it.
type FieldType struct {
	Name string
	Type reflect.Type
}

// Schema is the ordered (name, type) signature of a Book,
// independent of the field values. Names are pairwise distinct and
// sorted; a Schema derived from a Book is always canonical.
type Schema []FieldType

// Names returns the schema's field names in order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, ft := range s {
		out[i] = ft.Name
	}
	return out
}

// Contains returns whether the schema has a field with the name.
func (s Schema) Contains(name string) bool {
	_, ok := s.TypeOf(name)
	return ok
}

// TypeOf returns the type bound to the name and whether the name is
// in the schema.
func (s Schema) TypeOf(name string) (reflect.Type, bool) {
	for _, ft := range s {
		if ft.Name == name {
			return ft.Type, true
		}
	}
	return nil, false
}

// Equal implements equality for schemas: same names, same types,
// same order.
func (s Schema) Equal(other interface{}) bool {
	os, isSchema := other.(Schema)
	if !isSchema || len(os) != len(s) {
		return false
	}
	for i, ft := range s {
		if os[i].Name != ft.Name || os[i].Type != ft.Type {
			return false
		}
	}
	return true
}

// String returns a string representation of the Schema, used in the
// operation diagnostics.
func (s Schema) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ft := range s {
		buf.WriteString(ft.Name)
		buf.WriteByte(' ')
		if ft.Type == nil {
			buf.WriteString("<nil>")
		} else {
			buf.WriteString(ft.Type.String())
		}
		if i < len(s)-1 {
			buf.WriteString(", ")
		}
	}
	buf.WriteByte('}')
	return buf.String()
}

// BookDefault synthesizes a Book from a schema alone: every field is
// bound to its type's zero value. A nil field type yields a null
// value.
func BookDefault(s Schema) *Book {
	out := BookNew()
	for _, ft := range s {
		if ft.Type == nil {
			out = out.Assoc(K(ft.Name), nil)
			continue
		}
		out = out.Assoc(K(ft.Name), reflect.Zero(ft.Type).Interface())
	}
	return out
}
