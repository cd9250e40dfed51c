package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder writes a Huffman-coded stream: the frequency header followed by the
// codeword of every byte written to it.  The bytes written must match the
// FrequencyTable the Encoder was created with, byte for byte.
type Encoder struct {
	w         *bitWriter
	codes     CodeTable
	remaining FrequencyTable
	err       error
	closed    bool
}

// NewEncoder builds the code for freq and writes the header to w.  The caller
// must Close the Encoder to flush the final partial byte.
func NewEncoder(w io.Writer, freq FrequencyTable) (*Encoder, error) {
	codes, err := NewCodeTable(freq)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		w:         newBitWriter(w),
		codes:     codes,
		remaining: freq,
	}
	if err := writeHeader(e.w, freq); err != nil {
		_ = e.w.Close()
		return nil, err
	}
	return e, nil
}

// CodeTable returns the code this Encoder writes with.
func (e *Encoder) CodeTable() CodeTable {
	return e.codes
}

// Write encodes the bytes of p.  A byte that occurs more often than the
// frequency table allows fails with ErrFrequencyMismatch.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, fmt.Errorf("huffman: write to closed Encoder")
	}
	for i, b := range p {
		if e.remaining[b] == 0 {
			e.err = fmt.Errorf("%w: extra occurrence of byte %s", ErrFrequencyMismatch, Symbol(b))
			return i, e.err
		}
		if err := e.w.WriteCode(e.codes.Lookup(Symbol(b))); err != nil {
			e.err = err
			return i, err
		}
		e.remaining[b]--
	}
	return len(p), nil
}

// Close pads and flushes the payload.  It does not close the underlying
// io.Writer.  If fewer bytes were written than the frequency table declares,
// the output is still flushed and Close returns ErrFrequencyMismatch.
func (e *Encoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true

	err := e.w.Close()
	if e.err == nil {
		e.err = err
	}
	if e.err == nil {
		if left := e.remaining.Total(); left != 0 {
			e.err = fmt.Errorf("%w: %d bytes missing", ErrFrequencyMismatch, left)
		}
	}
	return e.err
}

// Encode reads all of r and writes its Huffman-coded form to w.
//
// The input is scanned twice: once to count byte frequencies and once to
// write codewords.  If r is an io.ReadSeeker it is rewound to its starting
// offset between passes; otherwise it is buffered in memory.
//
func Encode(w io.Writer, r io.Reader) error {
	src, err := rewindable(r)
	if err != nil {
		return err
	}

	freq, err := CountFrequencies(src)
	if err != nil {
		return err
	}
	if err := src.Rewind(); err != nil {
		return err
	}

	e, err := NewEncoder(w, freq)
	if err != nil {
		return err
	}
	_, err = io.Copy(e, src)
	if closeErr := e.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	log.Debugf("encoded %d bytes with %v", freq.Total(), e.codes)
	return nil
}

// EncodeBytes returns the Huffman-coded form of data.
func EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type rewinder struct {
	io.ReadSeeker
	start int64
}

func (rw rewinder) Rewind() error {
	_, err := rw.Seek(rw.start, io.SeekStart)
	return err
}

func rewindable(r io.Reader) (rewinder, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err == nil {
			return rewinder{rs, start}, nil
		}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return rewinder{}, err
	}
	return rewinder{bytes.NewReader(buf.Bytes()), 0}, nil
}

var _ io.WriteCloser = (*Encoder)(nil)
