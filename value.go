package resp2

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the variant of a RESP2 value by its wire tag byte.
type Type byte

const (
	// RESP2 value types
	TypeSimpleString Type = '+'
	TypeSimpleError  Type = '-'
	TypeInteger      Type = ':'
	TypeBulkString   Type = '$'
	TypeArray        Type = '*'
)

// Value represents a decoded RESP2 value.
//
// Data holds the text of a simple string, the message of a simple
// error, or the raw payload of a bulk string. Bulk payloads are
// arbitrary bytes and are never interpreted as text by the decoder.
// ErrKind is set only for simple errors and holds the uppercase
// classifier token (e.g. "ERR", "WRONGTYPE"). IsNull distinguishes the
// null bulk string and null array sentinels from their empty
// counterparts.
type Value struct {
	Type    Type
	Data    []byte
	ErrKind string
	Integer int64
	Array   []Value
	IsNull  bool
}

// String returns a string representation of the value.
func (v Value) String() string {
	switch v.Type {
	case TypeSimpleString:
		return string(v.Data)
	case TypeSimpleError:
		return v.ErrKind + " " + string(v.Data)
	case TypeInteger:
		return strconv.FormatInt(v.Integer, 10)
	case TypeBulkString:
		if v.IsNull {
			return "(nil)"
		}
		return string(v.Data)
	case TypeArray:
		if v.IsNull {
			return "(nil)"
		}
		parts := make([]string, len(v.Array))
		for i, item := range v.Array {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("unknown type %c", v.Type)
	}
}

// Bytes returns the byte payload of the value.
func (v Value) Bytes() []byte {
	return v.Data
}

// Int returns the integer value, or 0 if not an integer.
func (v Value) Int() int64 {
	return v.Integer
}

// IsError returns true if this is a simple error value.
func (v Value) IsError() bool {
	return v.Type == TypeSimpleError
}

// Error returns the classifier and message if this is a simple error
// value, or an empty string otherwise.
func (v Value) Error() string {
	if v.Type == TypeSimpleError {
		return v.ErrKind + " " + string(v.Data)
	}
	return ""
}

// Equal reports whether two values are structurally identical. Null
// sentinels never equal their empty counterparts.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type || v.IsNull != o.IsNull {
		return false
	}
	switch v.Type {
	case TypeSimpleString, TypeBulkString:
		return bytes.Equal(v.Data, o.Data)
	case TypeSimpleError:
		return v.ErrKind == o.ErrKind && bytes.Equal(v.Data, o.Data)
	case TypeInteger:
		return v.Integer == o.Integer
	case TypeArray:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
