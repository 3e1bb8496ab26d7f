// Copyright (c) 2018-2020, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package book

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// ValueNew boxes a native go value as a field Value. The concrete
// type of the data is preserved; it is what the Book's schema records
// for the field. ValueNew will panic if the value cannot be a field
// value (funcs and channels have no useful equality).
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case Field:
		return d.Value()
	}
	switch reflect.TypeOf(data).Kind() {
	case reflect.Func, reflect.Chan:
		panic(errors.New("cannot create value, invalid type"))
	}
	return &Value{
		data: data,
	}
}

// Value is a single field's value. It holds data of any concrete
// type; the concrete type is the field's schema type. Values are
// immutable.
type Value struct {
	data interface{}
}

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()

// Perform allows one to match the type of the Value with a behavior
// to perform on that type without resorting to the assertion
// operations. Think of this as the switch v.(type) { ... } analogue
// for field values. It takes a list of func(v vT) oT functions and
// applies the first match to the value.
//
// If vT above is *Value or interface{} it matches all value types.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

// Type returns the concrete type of the held data. This is the type
// the containing Book's schema records for the field. A nil value
// has a nil type.
func (val *Value) Type() reflect.Type {
	return reflect.TypeOf(val.data)
}

// AsBook returns a *Book if the value is a Book and panics otherwise.
func (val *Value) AsBook() *Book {
	return val.data.(*Book)
}

// IsBook returns if the data stored in the value is a Book.
func (val *Value) IsBook() bool {
	_, isBook := val.data.(*Book)
	return isBook
}

// ToBook returns a *Book and allows the user to define a
// default. The value (*Book)(nil) is returned if no default is
// defined and the value is not a *Book.
func (val *Value) ToBook(defaultVal ...*Book) *Book {
	b, isBook := val.data.(*Book)
	if isBook {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsString returns a string if the value is a string and panics otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns if the data stored in the value is a string.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a
// default. The value "" is returned if no default is defined
// and the value is not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

var intType = reflect.TypeOf(int(0))

func convertToInt(v interface{}) int {
	return reflect.ValueOf(v).
		Convert(intType).
		Interface().(int)
}

// AsInt returns an int if the type is convertible to int and panics otherwise.
func (val *Value) AsInt() int {
	return convertToInt(val.data)
}

// IsInt returns if the value is an int.
func (val *Value) IsInt() bool {
	_, isInt := val.data.(int)
	return isInt
}

// ToInt returns an int if the type is convertible to int and returns
// the user supplied default or 0 otherwise.
func (val *Value) ToInt(defaultVal ...int) int {
	if isConvertibleNumeric(val.data, intType) {
		return convertToInt(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

var int64Type = reflect.TypeOf(int64(0))

func convertToInt64(v interface{}) int64 {
	return reflect.ValueOf(v).
		Convert(int64Type).
		Interface().(int64)
}

// AsInt64 returns an int64 if the type is convertible to int64 and panics otherwise.
func (val *Value) AsInt64() int64 {
	return convertToInt64(val.data)
}

// IsInt64 returns if the value is an int64.
func (val *Value) IsInt64() bool {
	_, isInt64 := val.data.(int64)
	return isInt64
}

// ToInt64 returns an int64 if the type is convertible to int64 and
// returns the user supplied default or 0 otherwise.
func (val *Value) ToInt64(defaultVal ...int64) int64 {
	if isConvertibleNumeric(val.data, int64Type) {
		return convertToInt64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

var uint64Type = reflect.TypeOf(uint64(0))

func convertToUint64(v interface{}) uint64 {
	return reflect.ValueOf(v).
		Convert(uint64Type).
		Interface().(uint64)
}

// AsUint64 returns a uint64 if the type is convertible to uint64 and panics otherwise.
func (val *Value) AsUint64() uint64 {
	return convertToUint64(val.data)
}

// IsUint64 returns if the value is a uint64.
func (val *Value) IsUint64() bool {
	_, isUint64 := val.data.(uint64)
	return isUint64
}

// ToUint64 returns a uint64 if the type is convertible to uint64 and
// returns the user supplied default or 0 otherwise.
func (val *Value) ToUint64(defaultVal ...uint64) uint64 {
	if isConvertibleNumeric(val.data, uint64Type) {
		return convertToUint64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

var float64Type = reflect.TypeOf(float64(0))

func convertToFloat(v interface{}) float64 {
	return reflect.ValueOf(v).
		Convert(float64Type).
		Interface().(float64)
}

// AsFloat returns a float64 if the type is convertible to float64 and panics otherwise.
func (val *Value) AsFloat() float64 {
	return convertToFloat(val.data)
}

// IsFloat returns if the value is a float64.
func (val *Value) IsFloat() bool {
	_, isFloat := val.data.(float64)
	return isFloat
}

// ToFloat returns a float64 if the type is convertible to float64 and
// returns the user supplied default or 0 otherwise.
func (val *Value) ToFloat(defaultVal ...float64) float64 {
	if isConvertibleNumeric(val.data, float64Type) {
		return convertToFloat(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns if the value is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool if the value is a bool and returns the
// user supplied default or false otherwise.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBool := val.data.(bool)
	if isBool {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

func isConvertibleNumeric(v interface{}, to reflect.Type) bool {
	ty := reflect.TypeOf(v)
	if ty == nil {
		return false
	}
	switch ty.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Float32,
		reflect.Float64:
		return ty.ConvertibleTo(to)
	}
	return false
}

// ToNative returns the held data directly as a native interface. The
// dynamic type is exactly the type that was stored.
func (val *Value) ToNative() interface{} {
	return val.data
}

// ToInterface is an alias for ToNative kept for symmetry with the
// boxing constructor.
func (val *Value) ToInterface() interface{} {
	return val.data
}

// IsNull returns whether the value's data is nil.
func (val *Value) IsNull() bool {
	return val.data == nil
}

// Equal provides an implementation of Equality for Value types.
func (val *Value) Equal(other interface{}) bool {
	if other == nil {
		return val == nil
	}
	ov, isValue := other.(*Value)
	if !isValue {
		return false
	}
	return (val == nil && ov == nil) ||
		equal(val.data, ov.data)
}

// Compare provides an implementation of Comparison for Value types.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, other.(*Value).data)
}

// String returns a go string representation of the Value.
func (val *Value) String() string {
	return fmt.Sprintf("%v", val.data)
}

// render writes the value the way Book.String displays it: strings
// are quoted, everything else uses its ordinary representation.
func (val *Value) render(buf *bytes.Buffer) {
	switch d := val.data.(type) {
	case string:
		buf.WriteString(strconv.Quote(d))
	default:
		fmt.Fprintf(buf, "%v", val.data)
	}
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
