package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder reads a Huffman-coded stream and yields the original bytes.
//
// NewDecoder consumes the frequency header and rebuilds the code tree from it
// alone.  Read then walks the tree one bit at a time, emitting a byte at each
// leaf, and returns io.EOF once the number of bytes declared by the header has
// been produced.  Padding bits after the last codeword are never read.
//
type Decoder struct {
	r       *bitReader
	freq    FrequencyTable
	tree    Tree
	total   uint64
	decoded uint64
	err     error
}

// NewDecoder reads the frequency header from r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	br := newBitReader(r)
	freq, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		r:     br,
		freq:  freq,
		tree:  tree,
		total: freq.Total(),
	}, nil
}

// Frequencies returns the frequency table read from the header.
func (d *Decoder) Frequencies() FrequencyTable {
	return d.freq
}

// Total returns the number of bytes the stream decodes to.
func (d *Decoder) Total() uint64 {
	return d.total
}

// Remaining returns the number of bytes not yet decoded.
func (d *Decoder) Remaining() uint64 {
	return d.total - d.decoded
}

// Read decodes up to len(p) bytes into p.
func (d *Decoder) Read(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	var n int
	for n < len(p) && d.decoded < d.total {
		symbol, err := d.decodeSymbol()
		if err != nil {
			d.err = err
			return n, err
		}
		p[n] = byte(symbol)
		n++
		d.decoded++
	}
	if d.decoded == d.total {
		d.err = io.EOF
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

func (d *Decoder) decodeSymbol() (Symbol, error) {
	n := d.tree.root
	for {
		switch x := n.(type) {
		case Leaf:
			return x.Symbol, nil
		case *Internal:
			bit, err := d.r.ReadBit()
			if err != nil {
				if err == io.ErrUnexpectedEOF {
					return 0, &TruncatedError{Decoded: d.decoded, Expected: d.total, Err: err}
				}
				return 0, err
			}
			if bit {
				n = x.Right
			} else {
				n = x.Left
			}
			if n == nil {
				return 0, &FormatError{
					Offset:  d.r.BitsRead() - 1,
					Problem: "bit does not extend any codeword",
				}
			}
		default:
			panic(fmt.Errorf("huffman: unknown node type %T", n))
		}
	}
}

// Decode reads a Huffman-coded stream from r and writes the decoded bytes to
// w.
func Decode(w io.Writer, r io.Reader) error {
	d, err := NewDecoder(r)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, d); err != nil {
		return err
	}
	log.Debugf("decoded %d bytes of %d distinct values", d.total, d.tree.Leaves())
	return nil
}

// DecodeBytes returns the decoded form of a Huffman-coded stream.
func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ io.Reader = (*Decoder)(nil)
