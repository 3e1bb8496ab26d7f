// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import "testing"

func TestSchema(t *testing.T) {
	t.Run("schema reflects names and types in order", func(t *testing.T) {
		s := BookWith(F("name", "Julian"), F("age", 28)).Schema()
		got := s.String()
		want := "{age int, name string}"
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("empty schema renders as {}", func(t *testing.T) {
		got := BookNew().Schema().String()
		assert(got == "{}", func() {
			t.Fatalf("expected {}, got %v\n", got)
		})
	})
	t.Run("TypeOf finds the bound type", func(t *testing.T) {
		s := BookWith(F("age", 28)).Schema()
		ty, ok := s.TypeOf("age")
		assert(ok && ty.String() == "int", func() {
			t.Fatalf("expected int, got %v\n", ty)
		})
		_, ok = s.TypeOf("name")
		assert(!ok, func() {
			t.Fatalf("expected absence\n")
		})
	})
	t.Run("equality requires names, types and order", func(t *testing.T) {
		a := BookWith(F("age", 28)).Schema()
		b := BookWith(F("age", 29)).Schema()
		c := BookWith(F("age", "old")).Schema()
		assert(a.Equal(b), func() {
			t.Fatalf("values must not affect schema equality\n")
		})
		assert(!a.Equal(c), func() {
			t.Fatalf("types must affect schema equality\n")
		})
	})
}

func TestBookDefault(t *testing.T) {
	t.Run("every field holds its type's zero value", func(t *testing.T) {
		s := BookWith(F("age", 28), F("name", "Julian"),
			F("tall", true)).Schema()
		b := BookDefault(s)
		assert(b.Schema().Equal(s), func() {
			t.Fatalf("expected %v, got %v\n", s, b.Schema())
		})
		got := b.String()
		want := "Book {age = 0, name = \"\", tall = false}"
		assert(got == want, func() {
			t.Fatalf("expected %v, got %v\n", want, got)
		})
	})
	t.Run("default of the empty schema is the empty book",
		func(t *testing.T) {
			b := BookDefault(Schema{})
			assert(b.Equal(BookNew()), func() {
				t.Fatalf("expected empty book, got %v\n", b)
			})
		})
	t.Run("defaults from a converted record schema", func(t *testing.T) {
		s := MustSchemaOf(person{})
		b := BookDefault(s)
		age, err := Get[int](b, K("age"))
		assert(err == nil, func() {
			t.Fatalf("unexpected error %v\n", err)
		})
		assert(age == 0, func() {
			t.Fatalf("expected 0, got %v\n", age)
		})
	})
}
