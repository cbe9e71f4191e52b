package archive

import (
	"bytes"
	"encoding/binary"
)

// GUID is an opaque 16-byte identifier. It is stored and compared
// byte-for-byte and never interpreted.
type GUID [16]byte

// Reader is a sequential cursor over an in-memory byte stream. All
// fixed-width values are little-endian. A Reader is owned by exactly one
// decoding session; it is not safe for concurrent use.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Offset returns the current cursor position in bytes.
func (r *Reader) Offset() int64 {
	return int64(r.off)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// take consumes n bytes and advances the cursor, or fails with an IOError
// without moving the cursor.
func (r *Reader) take(op string, n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, &IOError{Op: op, Offset: r.Offset(), Want: n, Have: r.Remaining()}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take("read uint8", 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a little-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take("read uint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take("read uint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take("read uint64", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt32 reads a little-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a little-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadGUID reads 16 bytes verbatim.
func (r *Reader) ReadGUID() (GUID, error) {
	var g GUID
	b, err := r.take("read guid", 16)
	if err != nil {
		return g, err
	}
	copy(g[:], b)
	return g, nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take("read bytes", n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadBlob reads an i32 byte count followed by that many bytes.
func (r *Reader) ReadBlob() ([]byte, error) {
	start := r.Offset()
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &FormatError{Offset: start, Msg: "negative blob length"}
	}
	return r.ReadBytes(int(n))
}

// ReadString reads an i32 byte count followed by that many bytes of UTF-8.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBlob()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadArray reads an i32 element count, then invokes elem exactly count
// times, collecting results in order. A negative count is a FormatError.
func ReadArray[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	start := r.Offset()
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &FormatError{Offset: start, Msg: "negative array count"}
	}
	out := make([]T, 0, min(int(n), 4096))
	for i := int32(0); i < n; i++ {
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Writer is the mirror of Reader: it appends little-endian primitives to an
// in-memory buffer. A Writer is owned by exactly one encoding session.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return int64(w.buf.Len())
}

// Bytes returns the encoded stream. The slice is valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	return w.buf.WriteByte(v)
}

// WriteUint16 writes a little-endian uint16.
func (w *Writer) WriteUint16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

// WriteUint32 writes a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

// WriteUint64 writes a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

// WriteInt32 writes a little-endian int32.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteInt64 writes a little-endian int64.
func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteGUID writes 16 bytes verbatim.
func (w *Writer) WriteGUID(g GUID) error {
	_, err := w.buf.Write(g[:])
	return err
}

// WriteBytes writes raw bytes with no prefix.
func (w *Writer) WriteBytes(b []byte) error {
	_, err := w.buf.Write(b)
	return err
}

// WriteBlob writes an i32 byte count followed by the bytes.
func (w *Writer) WriteBlob(b []byte) error {
	if err := w.WriteInt32(int32(len(b))); err != nil {
		return err
	}
	return w.WriteBytes(b)
}

// WriteString writes an i32 byte count followed by the UTF-8 bytes.
func (w *Writer) WriteString(s string) error {
	return w.WriteBlob([]byte(s))
}

// WriteArray writes the i32 element count, then each element in order.
func WriteArray[T any](w *Writer, items []T, elem func(*Writer, T) error) error {
	if err := w.WriteInt32(int32(len(items))); err != nil {
		return err
	}
	for _, it := range items {
		if err := elem(w, it); err != nil {
			return err
		}
	}
	return nil
}
