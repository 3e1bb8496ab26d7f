// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"bytes"
	"errors"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/try"
)

// BookNew creates the empty Book.
func BookNew() *Book {
	return &Book{fields: assocMapEmpty()}
}

// BookWith creates a Book populated with the supplied fields. Later
// fields win over earlier ones with the same name, matching Assoc's
// replacement rule, and the result is in canonical order regardless
// of the order the fields are listed in.
func BookWith(fields ...Field) *Book {
	return &Book{fields: assocMapWith(fields...)}
}

// Book is an extensible record: a set of named, heterogeneously
// typed fields kept sorted by name. Books are immutable, the
// mutation methods return a structurally shared copy of the book
// with the required changes. This provides cheap copies of the book
// and preserves the original allowing it to be easily shared.
type Book struct {
	fields *assocMap
}

// At returns the Value at the key's field or nil if it doesn't exist.
func (b *Book) At(k Key) *Value {
	return b.fields.at(k.Name())
}

// Find returns the value at the key or nil if it doesn't exist and
// whether the field was in the book.
func (b *Book) Find(k Key) (*Value, bool) {
	return b.fields.find(k.Name())
}

// Contains returns true if the field exists in the book.
func (b *Book) Contains(k Key) bool {
	return b.fields.contains(k.Name())
}

// Length returns the number of fields in the book.
func (b *Book) Length() int {
	return b.fields.length()
}

// Get returns the value of the field the key names. The book's
// schema is checked before any value is touched; a key naming an
// absent field yields a FieldError carrying the key and the full
// schema.
func (b *Book) Get(k Key) (*Value, error) {
	return b.verify("get", k)
}

// MustGet behaves as Get but panics on an absent field. The panic
// carries the same FieldError and may be recovered with try.Apply.
func (b *Book) MustGet(k Key) *Value {
	v, err := b.Get(k)
	if err != nil {
		panic(err)
	}
	return v
}

// Assoc associates a new value with the field the key names. Any
// existing binding for the name is removed first and the new value
// inserted in its canonical position, so the incoming value always
// wins whether the field was present or absent. Assoc never fails;
// it is the facility call sites use to grow a Book field by field
// from empty.
func (b *Book) Assoc(k Key, value interface{}) *Book {
	new := b.fields.assoc(k.Name(), ValueNew(value))
	if new == b.fields {
		return b
	}
	return &Book{fields: new}
}

// Update applies fn to the field's current value and associates the
// result, exactly as Assoc(k, fn(Get(k))). fn may be any function of
// one argument accepting the field's native value; its result type
// may differ from the field's current type. An absent field yields
// the same FieldError diagnostic as Get.
func (b *Book) Update(k Key, fn interface{}) (*Book, error) {
	v, err := b.verify("update", k)
	if err != nil {
		return nil, err
	}
	return b.Assoc(k, dyn.Apply(fn, v.ToNative())), nil
}

// MustUpdate behaves as Update but panics on an absent field.
func (b *Book) MustUpdate(k Key, fn interface{}) *Book {
	out, err := b.Update(k, fn)
	if err != nil {
		panic(err)
	}
	return out
}

// Delete removes the field the key names from the book. It is the
// identity when the field is absent and never fails.
func (b *Book) Delete(k Key) *Book {
	new := b.fields.delete(k.Name())
	if new == b.fields {
		return b
	}
	return &Book{fields: new}
}

// Union combines two books with disjoint field sets. A shared field
// name is a DuplicateFieldError; combining overlapping books must be
// spelled per field with Assoc so the winner is explicit. The empty
// Book is Union's identity.
func (b *Book) Union(other *Book) (*Book, error) {
	out, err := try.Apply(b.MustUnion, other)
	if err != nil {
		return nil, err
	}
	return out.(*Book), nil
}

// MustUnion behaves as Union but panics on a shared field name.
func (b *Book) MustUnion(other *Book) *Book {
	return &Book{fields: b.fields.union(other.fields)}
}

// Submap extracts exactly the named fields into a new Book. Every
// requested field is verified against the schema before extraction;
// the first absent name yields a FieldError.
func (b *Book) Submap(keys ...Key) (*Book, error) {
	names := make([]string, len(keys))
	for i, k := range keys {
		if _, err := b.verify("submap", k); err != nil {
			return nil, err
		}
		names[i] = k.Name()
	}
	return &Book{fields: b.fields.submap(names)}, nil
}

// Fields returns the book's fields in canonical order.
func (b *Book) Fields() []Field {
	out := make([]Field, 0, b.Length())
	b.fields.rangeInOrder(func(name string, v *Value) bool {
		out = append(out, Field{key: K(name), value: v})
		return true
	})
	return out
}

// Schema returns the book's schema: the ordered (name, type)
// signature of its fields, independent of the values.
func (b *Book) Schema() Schema {
	out := make(Schema, 0, b.Length())
	b.fields.rangeInOrder(func(name string, v *Value) bool {
		out = append(out, FieldType{Name: name, Type: v.Type()})
		return true
	})
	return out
}

// Range iterates over the book's fields in canonical order. Range
// can take a set of functions matched by type. If the function
// returns a bool this is treated as a loop termination variable, if
// false the loop will terminate.
//
//	func(Field) iterates over Fields
//	func(Field) bool, called with a Field, terminates the loop on false.
//	func(string, *Value) iterates over names and values.
//	func(string, *Value) bool
//	func(string) iterates over only the names
//	func(string) bool
//	func(*Value) iterates over only the values
//	func(*Value) bool
func (b *Book) Range(fn interface{}) *Book {
	var rangeFn func(string, *Value) bool
	switch f := fn.(type) {
	case func(Field):
		rangeFn = func(name string, v *Value) bool {
			f(Field{key: K(name), value: v})
			return true
		}
	case func(Field) bool:
		rangeFn = func(name string, v *Value) bool {
			return f(Field{key: K(name), value: v})
		}
	case func(string, *Value):
		rangeFn = func(name string, v *Value) bool {
			f(name, v)
			return true
		}
	case func(string, *Value) bool:
		rangeFn = f
	case func(string):
		rangeFn = func(name string, _ *Value) bool {
			f(name)
			return true
		}
	case func(string) bool:
		rangeFn = func(name string, _ *Value) bool {
			return f(name)
		}
	case func(*Value):
		rangeFn = func(_ string, v *Value) bool {
			f(v)
			return true
		}
	case func(*Value) bool:
		rangeFn = func(_ string, v *Value) bool {
			return f(v)
		}
	default:
		panic("invalid range function")
	}
	b.fields.rangeInOrder(rangeFn)
	return b
}

// Equal implements equality for books. A book is equal to another
// book when their schemas are identical and every field holds equal
// values; books of differing schemas are never equal. Equality
// checks are linear with respect to the number of fields.
func (b *Book) Equal(other interface{}) bool {
	ob, isBook := other.(*Book)
	return isBook && b.fields.equal(ob.fields)
}

// Compare orders two books of identical schema fieldwise in
// canonical order, first mismatch wins. Compare panics when the
// schemas differ; the panic may be recovered with try.Apply.
func (b *Book) Compare(other interface{}) int {
	ob, isBook := other.(*Book)
	if !isBook {
		panic(errors.New("book: compare: not a book"))
	}
	if !b.Schema().Equal(ob.Schema()) {
		panic(errors.New("book: compare: mismatched schemas " +
			b.Schema().String() + " and " + ob.Schema().String()))
	}
	return b.fields.compareTo(ob.fields)
}

// String returns a string representation of the Book, enumerating
// the fields in canonical order. The empty book renders as "Book {}".
func (b *Book) String() string {
	var buf bytes.Buffer
	buf.WriteString("Book {")
	var n int
	b.fields.rangeInOrder(func(name string, v *Value) bool {
		buf.WriteString(name)
		buf.WriteString(" = ")
		v.render(&buf)
		if n < b.Length()-1 {
			buf.WriteString(", ")
		}
		n = n + 1
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}

func (b *Book) verify(op string, k Key) (*Value, error) {
	v, ok := b.fields.find(k.Name())
	if !ok {
		return nil, &FieldError{Op: op, Field: k, Schema: b.Schema()}
	}
	return v, nil
}
