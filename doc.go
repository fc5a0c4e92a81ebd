// Package resp2 implements a decoder for version 2 of the Redis
// Serialization Protocol (RESP2).
//
// The decoder turns a byte buffer containing at least one complete
// encoded value into a typed Value tree, or reports precisely why the
// buffer's prefix is not a valid encoding. It performs no I/O and owns
// no connection state; a transport layer supplies buffered input and
// uses the consumed byte count to frame successive values.
//
// Basic usage:
//
//	value, n, err := resp2.Decode(input)
//	if err != nil {
//		if resp2.IsIncomplete(err) {
//			// input is a valid prefix, wait for more bytes
//		}
//		// input is malformed
//	}
//	input = input[n:] // remaining bytes, if any
//
// For reading from an io.Reader, the Reader type handles buffering and
// framing:
//
//	r := resp2.NewReader(conn)
//	for {
//		value, err := r.ReadValue()
//		if err != nil {
//			break
//		}
//		// Process value
//	}
//
// The package supports all RESP2 data types:
//   - Simple Strings
//   - Simple Errors
//   - Integers
//   - Bulk Strings (binary safe)
//   - Arrays (arbitrarily nested)
//   - Null bulk strings and null arrays
package resp2
