// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"errors"
	"reflect"
	"testing"
)

type person struct {
	Name    string `book:"name"`
	Age     int    `book:"age"`
	Ignored string `book:"-"`
	hidden  bool
}

type wideRecord struct {
	Field1 string `book:"field1"`
	Field2 int    `book:"field2"`
	Field3 rune   `book:"field3"`
}

type varying interface {
	which() string
}

func TestBookFrom(t *testing.T) {
	t.Run("record fields become book fields", func(t *testing.T) {
		b, err := BookFrom(person{Name: "Julian", Age: 28})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		assert(b.Length() == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, b.Length())
		})
		got := b.String()
		want := "Book {age = 28, name = \"Julian\"}"
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("declaration order need not be canonical", func(t *testing.T) {
		b, err := BookFrom(wideRecord{
			Field1: "one",
			Field2: 2,
			Field3: '3',
		})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		got := b.String()
		want := "Book {field1 = \"one\", field2 = 2, field3 = 51}"
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("pointers to records are dereferenced", func(t *testing.T) {
		b, err := BookFrom(&person{Name: "Julian", Age: 28})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		got, err := Get[string](b, K("name"))
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		assert(got == "Julian", func() {
			t.Fatalf("expected Julian, got %v\n", got)
		})
	})
	t.Run("untagged fields keep their go name", func(t *testing.T) {
		b, err := BookFrom(struct{ Count int }{Count: 3})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		assert(b.Contains(K("Count")), func() {
			t.Fatalf("expected Count in %v\n", b)
		})
	})
	t.Run("sum shapes are rejected as such", func(t *testing.T) {
		_, err := BookFrom((*varying)(nil))
		var serr *ShapeError
		assert(errors.As(err, &serr), func() {
			t.Fatalf("expected ShapeError, got %v\n", err)
		})
		assert(serr.IsSumType(), func() {
			t.Fatalf("expected sum type reason, got %v\n", serr)
		})
	})
	t.Run("non-record shapes are rejected as such", func(t *testing.T) {
		for _, in := range []interface{}{42, "a", []int{1}, nil,
			struct{}{}, struct{ hidden int }{}} {
			_, err := BookFrom(in)
			var serr *ShapeError
			assert(errors.As(err, &serr), func() {
				t.Fatalf("expected ShapeError for %v, got %v\n",
					in, err)
			})
			assert(!serr.IsSumType(), func() {
				t.Fatalf("expected non-record reason, got %v\n",
					serr)
			})
		}
	})
	t.Run("conversion then typed access round-trips", func(t *testing.T) {
		b, err := BookFrom(person{Name: "Julian", Age: 28})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		age, err := Get[int](b, K("age"))
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		assert(age == 28, func() {
			t.Fatalf("expected 28, got %v\n", age)
		})
	})
}

func TestSchemaOf(t *testing.T) {
	t.Run("schema matches a converted book's schema", func(t *testing.T) {
		s, err := SchemaOf(person{})
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		b := MustBookFrom(person{})
		assert(s.Equal(b.Schema()), func() {
			t.Fatalf("expected %v, got %v\n", b.Schema(), s)
		})
	})
	t.Run("accepts a reflect.Type", func(t *testing.T) {
		s, err := SchemaOf(reflect.TypeOf(wideRecord{}))
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		got := s.String()
		want := "{field1 string, field2 int, field3 int32}"
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("interface types are sum shapes", func(t *testing.T) {
		_, err := SchemaOf(reflect.TypeOf((*varying)(nil)).Elem())
		var serr *ShapeError
		assert(errors.As(err, &serr), func() {
			t.Fatalf("expected ShapeError, got %v\n", err)
		})
		assert(serr.IsSumType(), func() {
			t.Fatalf("expected sum type reason, got %v\n", serr)
		})
	})
}
