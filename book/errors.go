// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"fmt"
	"reflect"
)

// FieldError reports an operation that targeted a field name absent
// from the Book's schema. The schema is carried whole so the
// diagnostic names every field that was available.
type FieldError struct {
	Op     string
	Field  Key
	Schema Schema
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("book: %s: missing field %v in schema %v",
		e.Op, e.Field, e.Schema)
}

// TypeError reports a typed access whose requested type disagrees
// with the type recorded in the Book's schema for that field.
type TypeError struct {
	Op     string
	Field  Key
	Want   reflect.Type
	Got    reflect.Type
	Schema Schema
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("book: %s: field %v has type %v, not %v, in schema %v",
		e.Op, e.Field, e.Got, e.Want, e.Schema)
}

// DuplicateFieldError reports a union whose operands share a field
// name. Unions are defined only on disjoint schemas; re-assignment
// goes through Assoc which removes the old binding first.
type DuplicateFieldError struct {
	Field Key
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("book: union: duplicate field %v", e.Field)
}

// Reasons a shape cannot be converted to a Book. A variant is
// expressed in go as an interface; anything else that is not a
// struct with at least one convertible field is not a record.
const (
	reasonSumType   = "cannot convert sum types"
	reasonNonRecord = "cannot convert non-record types"
)

// ShapeError reports a conversion attempted on a type that is not a
// product of named fields. Reason distinguishes sum (interface)
// shapes from other non-record shapes.
type ShapeError struct {
	Type   reflect.Type
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("book: from: %s: %v", e.Reason, e.Type)
}

// IsSumType returns whether the rejected shape was a sum (variant)
// shape as opposed to some other non-record shape.
func (e *ShapeError) IsSumType() bool {
	return e.Reason == reasonSumType
}
