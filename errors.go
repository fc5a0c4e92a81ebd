package resp2

import (
	"errors"
	"fmt"
)

// Structural causes for decode failures. Each names the first grammar
// rule the input violated.
var (
	// ErrUnrecognizedType indicates the leading byte is not one of the
	// five RESP2 type tags.
	ErrUnrecognizedType = errors.New("unrecognized type tag")

	// ErrEmptyContent indicates a field required to be non-empty was empty.
	ErrEmptyContent = errors.New("empty content")

	// ErrEmptyKind indicates a simple error without an uppercase classifier.
	ErrEmptyKind = errors.New("empty error kind")

	// ErrMalformedTerminator indicates the CR-LF terminator was absent,
	// reordered, or only partially present.
	ErrMalformedTerminator = errors.New("malformed CRLF terminator")

	// ErrMalformedDigits indicates an integer or length field violated
	// the sign-and-digits grammar.
	ErrMalformedDigits = errors.New("malformed integer digits")

	// ErrOverflow indicates an integer outside the signed 64-bit range.
	ErrOverflow = errors.New("integer out of 64-bit range")

	// ErrInvalidLength indicates a declared length was negative but not
	// the null sentinel -1, or exceeded the configured maximum.
	ErrInvalidLength = errors.New("invalid declared length")

	// ErrTruncatedPayload indicates a bulk string declared more payload
	// bytes than the input contains.
	ErrTruncatedPayload = errors.New("truncated bulk string payload")

	// ErrTruncatedElements indicates the input was exhausted before all
	// declared array elements were decoded.
	ErrTruncatedElements = errors.New("truncated array elements")

	// ErrRecursionLimit indicates arrays nested beyond the configured
	// maximum depth.
	ErrRecursionLimit = errors.New("nesting depth limit exceeded")
)

// DecodeError describes the first grammar violation encountered while
// decoding a frame.
type DecodeError struct {
	Cause  error // one of the Err* sentinels above
	Offset int   // byte offset into the input where the violation was observed
	More   bool  // true when additional input could still complete the frame
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.More {
		return fmt.Sprintf("resp2: incomplete frame at offset %d: %v", e.Offset, e.Cause)
	}
	return fmt.Sprintf("resp2: invalid frame at offset %d: %v", e.Offset, e.Cause)
}

// Unwrap returns the structural cause.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// IsIncomplete reports whether err describes input that is a valid
// prefix of some frame and only needs more bytes. A caller reading
// from a stream should buffer additional input and retry; any other
// decode error is terminal for the frame.
func IsIncomplete(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.More
}

func errInvalid(cause error, offset int) *DecodeError {
	return &DecodeError{Cause: cause, Offset: offset}
}

func errIncomplete(cause error, offset int) *DecodeError {
	return &DecodeError{Cause: cause, Offset: offset, More: true}
}
