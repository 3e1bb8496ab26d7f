// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import "reflect"

// Get returns the field's value at its concrete type. It is the
// typed counterpart of (*Book).Get: the schema is verified before
// any value is touched, an absent field is a FieldError and a field
// whose schema type is not T is a TypeError, both carrying the full
// schema.
func Get[T any](b *Book, k Key) (T, error) {
	var zero T
	v, err := b.verify("get", k)
	if err != nil {
		return zero, err
	}
	out, ok := v.ToNative().(T)
	if !ok {
		return zero, &TypeError{
			Op:     "get",
			Field:  k,
			Want:   reflect.TypeOf((*T)(nil)).Elem(),
			Got:    v.Type(),
			Schema: b.Schema(),
		}
	}
	return out, nil
}

// MustGet behaves as Get but panics on an absent or mistyped field.
func MustGet[T any](b *Book, k Key) T {
	out, err := Get[T](b, k)
	if err != nil {
		panic(err)
	}
	return out
}

// Set associates the value with the field the key names. It is the
// typed counterpart of (*Book).Assoc and, like it, always succeeds
// with the incoming value winning.
func Set[T any](b *Book, k Key, value T) *Book {
	return b.Assoc(k, value)
}

// Update applies fn to the field's current value of type T and
// associates the result of type U, which may differ from T. It is
// defined exactly as Set(k, fn(Get(k))) and shares Get's
// diagnostics.
func Update[T, U any](b *Book, k Key, fn func(T) U) (*Book, error) {
	v, err := b.verify("update", k)
	if err != nil {
		return nil, err
	}
	in, ok := v.ToNative().(T)
	if !ok {
		return nil, &TypeError{
			Op:     "update",
			Field:  k,
			Want:   reflect.TypeOf((*T)(nil)).Elem(),
			Got:    v.Type(),
			Schema: b.Schema(),
		}
	}
	return b.Assoc(k, fn(in)), nil
}

// MustUpdate behaves as Update but panics on an absent or mistyped
// field.
func MustUpdate[T, U any](b *Book, k Key, fn func(T) U) *Book {
	out, err := Update(b, k, fn)
	if err != nil {
		panic(err)
	}
	return out
}
