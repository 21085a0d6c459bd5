package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SyntaxError describes invalid structured-data input.
type SyntaxError struct {
	// Offset is the number of bytes read before the error was detected.
	Offset int64
	// Line and Column locate Offset, both starting at 1.
	Line   int
	Column int
	// Msg is the parser's description of the problem.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Parse decodes data as a single JSON value.
//
// The input must hold exactly one value: empty input, truncated input and
// trailing data after the value are all reported as *SyntaxError.
// Numbers keep their source literal. When an object repeats a key, the
// member stays at the position of the first occurrence and takes the value
// of the last one.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, syntaxErrorFor(data)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		// json.Valid accepted the input, so this only happens on a decoder bug.
		return Value{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return v, nil
}

// syntaxErrorFor re-runs the standard decoder to obtain a positioned error.
func syntaxErrorFor(data []byte) error {
	var discard any
	err := json.Unmarshal(data, &discard)

	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		return newSyntaxError(data, jsonErr.Offset, jsonErr.Error())
	}
	if err != nil {
		return newSyntaxError(data, int64(len(data)), err.Error())
	}
	return newSyntaxError(data, int64(len(data)), "invalid JSON")
}

// newSyntaxError converts a byte offset into line and column numbers.
// The encoding/json offset counts the offending byte, so the position
// reported is that of byte offset-1.
func newSyntaxError(data []byte, offset int64, msg string) *SyntaxError {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	pos := offset - 1
	if pos < 0 {
		pos = 0
	}
	head := data[:pos]
	line := bytes.Count(head, []byte{'\n'}) + 1
	column := len(head) - bytes.LastIndexByte(head, '\n')

	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: column,
		Msg:    msg,
	}
}

// decodeValue reads the next complete value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// decodeArray reads array elements up to and including the closing bracket.
func decodeArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

// decodeObject reads object members up to and including the closing brace.
func decodeObject(dec *json.Decoder) (Value, error) {
	members := make([]Member, 0)
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}

		if i, seen := index[key]; seen {
			members[i].Value = val
			continue
		}
		index[key] = len(members)
		members = append(members, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Object(members...), nil
}
