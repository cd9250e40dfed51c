package huffman

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Bits are transferred most significant first within each byte, and 32-bit
// integers are big-endian.  This matches the on-disk layout documented in
// the package overview.

// bitWriter packs bits into bytes on an underlying io.Writer.  Write errors
// are sticky and reported by every later call.
type bitWriter struct {
	bw   *bitio.Writer
	n    uint64
	err  error
	done bool
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{bw: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.
func (w *bitWriter) WriteBit(bit bool) error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.WriteBool(bit)
	if w.err == nil {
		w.n++
	}
	return w.err
}

// WriteCode writes the bits of hc in order.
func (w *bitWriter) WriteCode(hc Code) error {
	if w.err != nil {
		return w.err
	}
	w.err = w.bw.WriteBits(hc.Bits, hc.Size)
	if w.err == nil {
		w.n += uint64(hc.Size)
	}
	return w.err
}

// WriteUint32 writes v as 32 big-endian bits.
func (w *bitWriter) WriteUint32(v uint32) error {
	return w.WriteCode(Code{Size: 32, Bits: uint64(v)})
}

// BitsWritten returns the number of bits written so far, excluding padding.
func (w *bitWriter) BitsWritten() uint64 {
	return w.n
}

// Close zero-pads the final partial byte and flushes buffered output.  It does
// not close the underlying io.Writer.
func (w *bitWriter) Close() error {
	if w.done {
		return w.err
	}
	w.done = true
	if err := w.bw.Close(); w.err == nil {
		w.err = err
	}
	return w.err
}

// bitReader exposes the bits of an underlying io.Reader one at a time.  When
// the source runs dry it returns io.ErrUnexpectedEOF; other read errors pass
// through unchanged.
type bitReader struct {
	br *bitio.Reader
	n  uint64
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{br: bitio.NewReader(r)}
}

// ReadBit reads a single bit.
func (r *bitReader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, eofIsUnexpected(err)
	}
	r.n++
	return bit, nil
}

// ReadUint32 reads 32 big-endian bits.
func (r *bitReader) ReadUint32() (uint32, error) {
	u, err := r.br.ReadBits(32)
	if err != nil {
		return 0, eofIsUnexpected(err)
	}
	r.n += 32
	return uint32(u), nil
}

// BitsRead returns the number of bits consumed so far.
func (r *bitReader) BitsRead() uint64 {
	return r.n
}

func eofIsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
