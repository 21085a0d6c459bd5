package document

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies the type of a Value.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a JSON number, kept as its source literal.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is an ordered list of values.
	KindArray
	// KindObject is an ordered list of key/value members.
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable node of a parsed document.
//
// Unlike a map[string]any produced by encoding/json, a Value keeps object
// members in the order they appeared in the source, so rendering a report
// twice, or in different formats, always yields the same member order.
type Value struct {
	kind Kind

	// text holds the string contents or the number literal.
	text string

	// flag holds the boolean value.
	flag bool

	items   []Value
	members []Member
}

// Null returns a null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Number returns a number value with the given literal.
// The literal is not validated.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns an array value holding items.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object returns an object value holding members in the given order.
func Object(members ...Member) Value { return Value{kind: KindObject, members: members} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string contents for strings and the literal for numbers.
// It returns an empty string for every other kind.
func (v Value) Text() string { return v.text }

// Bool reports the boolean value. It is false for non-boolean kinds.
func (v Value) Bool() bool { return v.flag }

// Items returns the elements of an array.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an object in source order.
func (v Value) Members() []Member { return v.members }

// Len returns the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// IsContainer reports whether the value is an array or an object.
func (v Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// AppendJSON appends the compact JSON encoding of v to dst.
// Strings are escaped without HTML escaping so report content such as
// "<script>" stays readable after json.Indent.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		return strconv.AppendBool(dst, v.flag)
	case KindNumber:
		return append(dst, v.text...)
	case KindString:
		return appendJSONString(dst, v.text)
	case KindArray:
		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.AppendJSON(dst)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, m.Key)
			dst = append(dst, ':')
			dst = m.Value.AppendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.AppendJSON(nil), nil
}

// appendJSONString appends s as a quoted JSON string.
func appendJSONString(dst []byte, s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s) //nolint:errcheck,errchkjson
	return append(dst, bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})...)
}
