// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
)

// assocMap is the ordered association map backing a Book. The store
// holds the field values keyed by name; names holds the same field
// names sorted and duplicate free, so iteration is always in
// canonical order. Both pieces are persistent structures and every
// operation returns a new structurally shared map. Canonical order
// is an invariant of construction, not a separate normalization
// step: there is no way to produce an assocMap whose names are out
// of order.
type assocMap struct {
	names *vector.Vector
	store *hashmap.Map
}

func assocMapEmpty() *assocMap {
	return &assocMap{
		names: vector.Empty(),
		store: hashmap.Empty(),
	}
}

// with folds the fields into an empty map, later bindings for the
// same name winning, matching assoc's replacement rule.
func assocMapWith(fields ...Field) *assocMap {
	out := assocMapEmpty()
	for _, f := range fields {
		out = out.assoc(f.Key().Name(), f.Value())
	}
	return out
}

func (m *assocMap) length() int {
	return m.store.Length()
}

func (m *assocMap) contains(name string) bool {
	return m.store.Contains(name)
}

func (m *assocMap) at(name string) *Value {
	out, ok := m.store.Find(name)
	if !ok {
		return nil
	}
	return out.(*Value)
}

func (m *assocMap) find(name string) (*Value, bool) {
	out, ok := m.store.Find(name)
	if !ok {
		return nil, ok
	}
	return out.(*Value), ok
}

// searchName returns the position name occupies, or would occupy, in
// the sorted name sequence.
func (m *assocMap) searchName(name string) int {
	lo, hi := 0, m.names.Length()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if m.names.At(mid).(string) < name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (m *assocMap) insertName(name string) *vector.Vector {
	pos := m.searchName(name)
	return vector.Empty().Transform(
		func(out *vector.TVector) *vector.TVector {
			m.names.Range(func(i int, n string) {
				if i == pos {
					out = out.Append(name)
				}
				out = out.Append(n)
			})
			if pos == m.names.Length() {
				out = out.Append(name)
			}
			return out
		})
}

// assoc binds name to value. An existing binding for the name is
// replaced, so the incoming value always wins; a new name is spliced
// into the sorted sequence at its canonical position.
func (m *assocMap) assoc(name string, value *Value) *assocMap {
	names := m.names
	if !m.store.Contains(name) {
		names = m.insertName(name)
	}
	newStore := m.store.Assoc(name, value)
	if newStore == m.store {
		return m
	}
	return &assocMap{
		names: names,
		store: newStore,
	}
}

// delete removes the binding for name. It is the identity when the
// name is absent.
func (m *assocMap) delete(name string) *assocMap {
	if !m.store.Contains(name) {
		return m
	}
	return &assocMap{
		names: m.names.Delete(m.searchName(name)),
		store: m.store.Delete(name),
	}
}

// submap extracts exactly the named fields. Presence of every name
// is the caller's precondition; Book verifies it against the schema
// before calling here.
func (m *assocMap) submap(names []string) *assocMap {
	out := assocMapEmpty()
	for _, name := range names {
		out = out.assoc(name, m.at(name))
	}
	return out
}

// union combines two maps with disjoint name sets. A shared name
// panics with a DuplicateFieldError; callers that want replacement
// semantics delete the old binding first.
func (m *assocMap) union(other *assocMap) *assocMap {
	out := m
	other.rangeInOrder(func(name string, v *Value) bool {
		if out.store.Contains(name) {
			panic(&DuplicateFieldError{Field: K(name)})
		}
		out = out.assoc(name, v)
		return true
	})
	return out
}

// rangeInOrder iterates the fields in canonical name order,
// terminating early when fn returns false.
func (m *assocMap) rangeInOrder(fn func(string, *Value) bool) {
	m.names.Range(func(_ int, name string) bool {
		return fn(name, m.at(name))
	})
}

func (m *assocMap) keys() []string {
	out := make([]string, 0, m.length())
	m.names.Range(func(_ int, name string) {
		out = append(out, name)
	})
	return out
}

// equal reports fieldwise equality. Maps of differing schemas are
// never equal. Equality checks are linear with respect to the number
// of fields.
func (m *assocMap) equal(other *assocMap) bool {
	return other.store.Length() == m.store.Length() &&
		equal(other.store, m.store)
}

// compareTo orders two maps of identical schema fieldwise in
// canonical order, first mismatch wins. Identical schemas are the
// caller's precondition.
func (m *assocMap) compareTo(other *assocMap) int {
	var out int
	m.rangeInOrder(func(name string, v *Value) bool {
		out = v.Compare(other.at(name))
		return out == 0
	})
	return out
}
