package wire

import "bytes"

// Framer splits an incoming byte stream into frames. It accumulates
// partial input across calls, so it can be fed straight from a socket
// read loop. The zero value is not usable; use NewFramer.
type Framer struct {
	buf []byte
}

// NewFramer creates a framer with an empty buffer.
func NewFramer() *Framer {
	return &Framer{buf: make([]byte, 0, 256)}
}

// Push appends data to the internal buffer.
func (f *Framer) Push(data []byte) {
	f.buf = append(f.buf, data...)
}

// Next returns the next complete frame, or ok=false when the buffer
// holds no complete frame yet. Bytes before the first start delimiter
// are discarded, which covers trailing line endings and any line noise
// between frames.
//
// The end delimiter is the closing bracket followed by the line ending,
// so a closing bracket inside a quoted name does not terminate the
// frame early.
func (f *Framer) Next() (Frame, bool) {
	start := bytes.IndexAny(f.buf, "[(")
	if start < 0 {
		// No start delimiter. Keep nothing.
		f.buf = f.buf[:0]
		return Frame{}, false
	}
	if start > 0 {
		f.buf = f.buf[start:]
	}

	var role Role
	var end []byte
	if f.buf[0] == '[' {
		role = RoleRequest
		end = []byte("]\r\n")
	} else {
		role = RoleResponse
		end = []byte(")\r\n")
	}

	stop := bytes.Index(f.buf, end)
	if stop < 0 {
		// Incomplete frame; wait for more input.
		return Frame{}, false
	}

	payload := string(f.buf[1:stop])
	f.buf = f.buf[stop+len(end):]
	return Frame{Role: role, Payload: payload}, true
}

// Pending reports whether the buffer holds a partial frame.
func (f *Framer) Pending() bool {
	return len(f.buf) > 0
}
