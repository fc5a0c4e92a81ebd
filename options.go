package resp2

import "fmt"

// Default resource limits. The bulk and array caps match common Redis
// server limits; the depth cap bounds stack growth on adversarial
// nesting.
const (
	DefaultMaxDepth = 128

	// DefaultMaxBulkLength is the maximum accepted bulk string payload (1GB)
	DefaultMaxBulkLength = 1024 * 1024 * 1024

	// DefaultMaxArrayLength is the maximum accepted array element count
	DefaultMaxArrayLength = 1024 * 1024
)

// Option represents a configuration option for a Decoder.
type Option func(*Decoder) error

// WithMaxDepth sets the maximum array nesting depth. Frames nested
// deeper fail with ErrRecursionLimit.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		d.maxDepth = n
		return nil
	}
}

// WithMaxBulkLength sets the maximum accepted bulk string payload
// length in bytes. Longer declared lengths fail with ErrInvalidLength.
func WithMaxBulkLength(n int64) Option {
	return func(d *Decoder) error {
		if n < 0 {
			return fmt.Errorf("max bulk length must be non-negative, got %d", n)
		}
		d.maxBulkLength = n
		return nil
	}
}

// WithMaxArrayLength sets the maximum accepted array element count.
// Larger declared counts fail with ErrInvalidLength.
func WithMaxArrayLength(n int64) Option {
	return func(d *Decoder) error {
		if n < 0 {
			return fmt.Errorf("max array length must be non-negative, got %d", n)
		}
		d.maxArrayLength = n
		return nil
	}
}
