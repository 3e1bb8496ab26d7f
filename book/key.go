// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import "fmt"

// K creates a Key for the supplied field name. Keys carry no data
// beyond the name so any two Keys made from the same name are
// interchangeable.
func K(name string) Key {
	return Key{name: name}
}

// Key names a field for the Book operations. It is a stateless
// marker; equality is defined purely by name.
type Key struct {
	name string
}

// Name returns the field name the key selects.
func (k Key) Name() string { return k.name }

// String returns a string representation of the Key.
func (k Key) String() string { return "#" + k.name }

// Equal implements equality between Keys.
func (k Key) Equal(other interface{}) bool {
	ok, isKey := other.(Key)
	return isKey && ok.name == k.name
}

// F creates a new Field from a name and a value. Fields are the
// members of Books.
func F(name string, value interface{}) Field {
	return Field{key: K(name), value: ValueNew(value)}
}

// Field is a named value, one member of a Book.
type Field struct {
	key   Key
	value *Value
}

// Key returns the field's key.
func (f Field) Key() Key { return f.key }

// Value returns the field's value.
func (f Field) Value() *Value { return f.value }

// String returns a string representation of the Field.
func (f Field) String() string { return fmt.Sprintf("[%v %v]", f.key, f.value) }

// Equal implements equality between Fields.
func (f Field) Equal(other interface{}) bool {
	of, isField := other.(Field)
	if !isField {
		return false
	}
	return of.key == f.key && equal(of.value, f.value)
}
