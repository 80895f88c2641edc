package fast

import "encoding/binary"

// buffer.go provides a lightweight, non-thread-safe cursor over byte slices.
//
// It is used for fixed-layout records (e.g. the 32-byte DAO field) where the
// caller has already validated the total length. Reads past the end panic, so
// callers must check len() up front.

type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset tracks the current reading position.
	offset int
}

type Writer struct {
	buf []byte
}

// NewReader creates a Reader to consume the provided byte slice.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Usually called with `make([]byte, 0, size)` to avoid re-allocation.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// Uint64 appends v as 8 little-endian bytes.
func (b *Writer) Uint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// Uint64 consumes 8 bytes and interprets them as a little-endian integer.
// Panics if fewer than 8 bytes remain.
func (b *Reader) Uint64() uint64 {
	res := binary.LittleEndian.Uint64(b.buf[b.offset : b.offset+8])
	b.offset += 8
	return res
}
