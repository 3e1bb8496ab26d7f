// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

// Package book implements an extensible record type. A Book is a
// collection of named, heterogeneously typed fields kept in a
// canonical sorted order regardless of the order the fields were
// added in. Books are immutable; the mutation methods return a new
// structurally shared copy with the changes made, which provides
// cheap copies and preserves the original allowing it to be easily
// shared. The library is based on the central Value type that holds
// an arbitrary field value; this may be thought of as a restricted
// form of the go interface{} type. Field lookups are verified against
// the Book's Schema before any value is touched, and failures carry
// the offending field name and the full schema in the diagnostic.
package book
