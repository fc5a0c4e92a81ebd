package resp2_test

import (
	"testing"

	"github.com/raniellyferreira/resp2"
	"github.com/raniellyferreira/resp2/internal/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value resp2.Value
		want  string
	}{
		{
			name:  "simple string",
			value: resp2.Value{Type: resp2.TypeSimpleString, Data: []byte("OK")},
			want:  "OK",
		},
		{
			name:  "simple error",
			value: resp2.Value{Type: resp2.TypeSimpleError, ErrKind: "ERR", Data: []byte("unknown command")},
			want:  "ERR unknown command",
		},
		{
			name:  "integer",
			value: resp2.Value{Type: resp2.TypeInteger, Integer: -42},
			want:  "-42",
		},
		{
			name:  "bulk string",
			value: resp2.Value{Type: resp2.TypeBulkString, Data: []byte("hello")},
			want:  "hello",
		},
		{
			name:  "null bulk string",
			value: resp2.Value{Type: resp2.TypeBulkString, IsNull: true},
			want:  "(nil)",
		},
		{
			name: "array",
			value: resp2.Value{Type: resp2.TypeArray, Array: []resp2.Value{
				{Type: resp2.TypeInteger, Integer: 1},
				{Type: resp2.TypeSimpleString, Data: []byte("two")},
			}},
			want: "[1, two]",
		},
		{
			name:  "null array",
			value: resp2.Value{Type: resp2.TypeArray, IsNull: true},
			want:  "(nil)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	bulk, _, err := resp2.Decode([]byte("$5\r\nhello\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte("hello"), bulk.Bytes())
	assert.Equal(t, int64(0), bulk.Int())

	integer, _, err := resp2.Decode([]byte(":-42\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(-42), integer.Int())
	assert.Equal(t, []byte(nil), integer.Bytes())
}

func TestValueError(t *testing.T) {
	e := resp2.Value{Type: resp2.TypeSimpleError, ErrKind: "WRONGTYPE", Data: []byte("bad value")}
	assert.Equal(t, true, e.IsError())
	assert.Equal(t, "WRONGTYPE bad value", e.Error())

	s := resp2.Value{Type: resp2.TypeSimpleString, Data: []byte("OK")}
	assert.Equal(t, false, s.IsError())
	assert.Equal(t, "", s.Error())
}

// TestValueNullDistinction pins the sentinel semantics: null values are
// never equal to their empty counterparts.
func TestValueNullDistinction(t *testing.T) {
	nullBulk, _, err := resp2.Decode([]byte("$-1\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	emptyBulk, _, err := resp2.Decode([]byte("$0\r\n\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if nullBulk.Equal(emptyBulk) {
		t.Error("null bulk string equals empty bulk string")
	}
	assert.Equal(t, true, nullBulk.IsNull)
	assert.Equal(t, false, emptyBulk.IsNull)

	nullArray, _, err := resp2.Decode([]byte("*-1\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	emptyArray, _, err := resp2.Decode([]byte("*0\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if nullArray.Equal(emptyArray) {
		t.Error("null array equals empty array")
	}
	assert.Equal(t, true, nullArray.IsNull)
	assert.Equal(t, 0, len(emptyArray.Array))
}

func TestValueEqual(t *testing.T) {
	a := resp2.Value{Type: resp2.TypeArray, Array: []resp2.Value{
		{Type: resp2.TypeBulkString, Data: []byte("x")},
		{Type: resp2.TypeInteger, Integer: 1},
	}}
	b := resp2.Value{Type: resp2.TypeArray, Array: []resp2.Value{
		{Type: resp2.TypeBulkString, Data: []byte("x")},
		{Type: resp2.TypeInteger, Integer: 1},
	}}
	c := resp2.Value{Type: resp2.TypeArray, Array: []resp2.Value{
		{Type: resp2.TypeBulkString, Data: []byte("x")},
		{Type: resp2.TypeInteger, Integer: 2},
	}}

	assert.Equal(t, true, a.Equal(b))
	assert.Equal(t, false, a.Equal(c))
	assert.Equal(t, false, a.Equal(resp2.Value{Type: resp2.TypeArray, IsNull: true}))
}
