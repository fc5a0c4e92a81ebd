package resp2

import "io"

const initialBufferSize = 4096

// Reader frames successive RESP2 values from an io.Reader. It buffers
// input internally and retries a frame whenever the decoder reports it
// as incomplete, so callers see only whole values or terminal errors.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r   io.Reader
	dec *Decoder
	buf []byte // buf[off:end] holds buffered, undecoded input
	off int
	end int
}

// NewReader creates a Reader using the default decoder limits.
func NewReader(r io.Reader) *Reader {
	return defaultDecoder.NewReader(r)
}

// NewReader creates a Reader that frames values with this decoder's
// limits.
func (d *Decoder) NewReader(r io.Reader) *Reader {
	return &Reader{r: r, dec: d}
}

// ReadValue reads the next complete value from the stream. It returns
// io.EOF when the stream ends on a frame boundary and
// io.ErrUnexpectedEOF when it ends inside a frame. Malformed input
// returns the decoder's *DecodeError unchanged.
func (r *Reader) ReadValue() (Value, error) {
	for {
		if r.end > r.off {
			v, n, err := r.dec.Decode(r.buf[r.off:r.end])
			if err == nil {
				r.off += n
				if r.off == r.end {
					r.off, r.end = 0, 0
				}
				return v, nil
			}
			if !IsIncomplete(err) {
				return Value{}, err
			}
		}
		if err := r.fill(); err != nil {
			if err == io.EOF && r.end > r.off {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
	}
}

// Buffered returns the number of undecoded bytes held by the Reader.
func (r *Reader) Buffered() int {
	return r.end - r.off
}

// Reset discards buffered input and switches to a new underlying reader.
func (r *Reader) Reset(reader io.Reader) {
	r.r = reader
	r.off, r.end = 0, 0
}

// fill compacts the buffer and reads more input, growing the buffer
// when it is full.
func (r *Reader) fill() error {
	if r.buf == nil {
		r.buf = make([]byte, initialBufferSize)
	}
	if r.off > 0 {
		copy(r.buf, r.buf[r.off:r.end])
		r.end -= r.off
		r.off = 0
	}
	if r.end == len(r.buf) {
		grown := make([]byte, 2*len(r.buf))
		copy(grown, r.buf[:r.end])
		r.buf = grown
	}
	n, err := r.r.Read(r.buf[r.end:])
	r.end += n
	if n > 0 {
		return nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return err
}
