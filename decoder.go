package resp2

import "math"

// Decoder decodes RESP2 frames from byte buffers. The zero value is
// not usable; construct one with New. A Decoder holds only limits and
// is safe for concurrent use.
type Decoder struct {
	maxDepth       int
	maxBulkLength  int64
	maxArrayLength int64
}

// New creates a Decoder with the given options applied over defaults.
func New(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		maxDepth:       DefaultMaxDepth,
		maxBulkLength:  DefaultMaxBulkLength,
		maxArrayLength: DefaultMaxArrayLength,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

var defaultDecoder = &Decoder{
	maxDepth:       DefaultMaxDepth,
	maxBulkLength:  DefaultMaxBulkLength,
	maxArrayLength: DefaultMaxArrayLength,
}

// Decode decodes one complete frame from the front of input using the
// default limits. See (*Decoder).Decode.
func Decode(input []byte) (Value, int, error) {
	return defaultDecoder.Decode(input)
}

// Decode decodes one complete frame from the front of input, returning
// the value and the number of bytes consumed. Bytes following the
// frame's terminator are left for the caller. On failure the consumed
// count is zero and the error is a *DecodeError; IsIncomplete
// distinguishes a valid-but-short prefix from malformed input.
func (d *Decoder) Decode(input []byte) (Value, int, error) {
	v, pos, err := d.decodeValue(input, 0, 0)
	if err != nil {
		return Value{}, 0, err
	}
	return v, pos, nil
}

// decodeValue reads the one-byte type tag at pos and dispatches to the
// matching sub-decoder. It is also the recursive entry point used by
// the array decoder.
func (d *Decoder) decodeValue(in []byte, pos, depth int) (Value, int, error) {
	if pos == len(in) {
		return Value{}, pos, errIncomplete(ErrUnrecognizedType, pos)
	}
	tag := in[pos]
	pos++
	switch Type(tag) {
	case TypeSimpleString:
		return d.decodeSimpleString(in, pos)
	case TypeSimpleError:
		return d.decodeSimpleError(in, pos)
	case TypeInteger:
		return d.decodeInteger(in, pos)
	case TypeBulkString:
		return d.decodeBulkString(in, pos)
	case TypeArray:
		return d.decodeArray(in, pos, depth)
	default:
		return Value{}, pos - 1, errInvalid(ErrUnrecognizedType, pos-1)
	}
}

func (d *Decoder) decodeSimpleString(in []byte, pos int) (Value, int, error) {
	line, pos, err := readSimpleLine(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	return Value{Type: TypeSimpleString, Data: line}, pos, nil
}

// decodeSimpleError reads a maximal run of ASCII uppercase as the
// classifier, a run of one-or-more spaces and LFs as the separator,
// then a message with the exact simple string grammar.
func (d *Decoder) decodeSimpleError(in []byte, pos int) (Value, int, error) {
	start := pos
	for pos < len(in) && in[pos] >= 'A' && in[pos] <= 'Z' {
		pos++
	}
	if pos == start {
		if pos == len(in) {
			return Value{}, pos, errIncomplete(ErrEmptyKind, pos)
		}
		return Value{}, pos, errInvalid(ErrEmptyKind, pos)
	}
	kind := string(in[start:pos])

	sepStart := pos
	for pos < len(in) && (in[pos] == ' ' || in[pos] == '\n') {
		pos++
	}
	if pos == sepStart {
		if pos == len(in) {
			return Value{}, pos, errIncomplete(ErrEmptyContent, pos)
		}
		return Value{}, pos, errInvalid(ErrEmptyContent, pos)
	}

	msg, pos, err := readSimpleLine(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	return Value{Type: TypeSimpleError, ErrKind: kind, Data: msg}, pos, nil
}

func (d *Decoder) decodeInteger(in []byte, pos int) (Value, int, error) {
	n, pos, err := readInteger(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	return Value{Type: TypeInteger, Integer: n}, pos, nil
}

func (d *Decoder) decodeBulkString(in []byte, pos int) (Value, int, error) {
	at := pos
	length, pos, err := readInteger(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	if length == -1 {
		return Value{Type: TypeBulkString, IsNull: true}, pos, nil
	}
	if length < 0 || length > d.maxBulkLength {
		return Value{}, pos, errInvalid(ErrInvalidLength, at)
	}
	if int64(len(in)-pos) < length {
		return Value{}, pos, errIncomplete(ErrTruncatedPayload, len(in))
	}
	payload := make([]byte, length)
	copy(payload, in[pos:pos+int(length)])
	pos += int(length)
	pos, err = expectCRLF(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	return Value{Type: TypeBulkString, Data: payload}, pos, nil
}

func (d *Decoder) decodeArray(in []byte, pos, depth int) (Value, int, error) {
	if depth >= d.maxDepth {
		return Value{}, pos, errInvalid(ErrRecursionLimit, pos-1)
	}
	at := pos
	count, pos, err := readInteger(in, pos)
	if err != nil {
		return Value{}, pos, err
	}
	if count == -1 {
		return Value{Type: TypeArray, IsNull: true}, pos, nil
	}
	if count < 0 || count > d.maxArrayLength {
		return Value{}, pos, errInvalid(ErrInvalidLength, at)
	}

	elements := make([]Value, count)
	for i := int64(0); i < count; i++ {
		if pos == len(in) {
			return Value{}, pos, errIncomplete(ErrTruncatedElements, pos)
		}
		element, next, err := d.decodeValue(in, pos, depth+1)
		if err != nil {
			return Value{}, next, err
		}
		elements[i] = element
		pos = next
	}
	return Value{Type: TypeArray, Array: elements}, pos, nil
}

// readSimpleLine consumes one-or-more bytes excluding CR and LF,
// followed by an exact CR-LF, returning a copy of the content. The
// narrow return type guarantees the simple error message is always
// produced by this grammar.
func readSimpleLine(in []byte, pos int) ([]byte, int, error) {
	start := pos
	for pos < len(in) && in[pos] != '\r' && in[pos] != '\n' {
		pos++
	}
	if pos == len(in) {
		return nil, pos, errIncomplete(ErrMalformedTerminator, pos)
	}
	if pos == start {
		return nil, pos, errInvalid(ErrEmptyContent, pos)
	}
	content := make([]byte, pos-start)
	copy(content, in[start:pos])
	pos, err := expectCRLF(in, pos)
	if err != nil {
		return nil, pos, err
	}
	return content, pos, nil
}

// readInteger parses an optional single sign followed by one-or-more
// ASCII decimal digits and an exact CR-LF. The magnitude is
// accumulated negatively so that the full signed 64-bit range is
// boundary-exact.
func readInteger(in []byte, pos int) (int64, int, error) {
	neg := false
	if pos < len(in) && (in[pos] == '+' || in[pos] == '-') {
		neg = in[pos] == '-'
		pos++
	}

	digStart := pos
	var n int64
	for pos < len(in) {
		c := in[pos]
		if c < '0' || c > '9' {
			break
		}
		if n < math.MinInt64/10 {
			return 0, pos, errInvalid(ErrOverflow, pos)
		}
		n *= 10
		digit := int64(c - '0')
		if n < math.MinInt64+digit {
			return 0, pos, errInvalid(ErrOverflow, pos)
		}
		n -= digit
		pos++
	}
	if pos == digStart {
		if pos == len(in) {
			return 0, pos, errIncomplete(ErrMalformedDigits, pos)
		}
		return 0, pos, errInvalid(ErrMalformedDigits, pos)
	}
	if !neg && n == math.MinInt64 {
		return 0, pos, errInvalid(ErrOverflow, digStart)
	}

	switch {
	case pos == len(in):
		return 0, pos, errIncomplete(ErrMalformedTerminator, pos)
	case in[pos] == '\r':
		pos, err := expectCRLF(in, pos)
		if err != nil {
			return 0, pos, err
		}
		if !neg {
			n = -n
		}
		return n, pos, nil
	case in[pos] == '\n':
		return 0, pos, errInvalid(ErrMalformedTerminator, pos)
	default:
		// whitespace, letters, NUL, decimal points, exponents
		return 0, pos, errInvalid(ErrMalformedDigits, pos)
	}
}

// expectCRLF requires the exact two-byte CR-LF sequence at pos.
func expectCRLF(in []byte, pos int) (int, error) {
	if pos == len(in) {
		return pos, errIncomplete(ErrMalformedTerminator, pos)
	}
	if in[pos] != '\r' {
		return pos, errInvalid(ErrMalformedTerminator, pos)
	}
	if pos+1 == len(in) {
		return pos, errIncomplete(ErrMalformedTerminator, pos+1)
	}
	if in[pos+1] != '\n' {
		return pos, errInvalid(ErrMalformedTerminator, pos+1)
	}
	return pos + 2, nil
}
