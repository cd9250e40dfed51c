package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// CodeTable maps each Symbol of a Huffman tree to its codeword.
type CodeTable struct {
	codes      [NumSymbols]Code
	numSymbols int
	minSize    byte
	maxSize    byte
}

// NewCodeTable builds the Huffman tree for freq and derives its CodeTable.
func NewCodeTable(freq FrequencyTable) (CodeTable, error) {
	tree, err := BuildTree(freq)
	if err != nil {
		return CodeTable{}, err
	}
	var ct CodeTable
	ct.Init(tree)
	return ct, nil
}

// Init initializes this CodeTable from a tree.  Walking left appends a 0 bit
// and walking right appends a 1 bit; each leaf records the accumulated bits.
// The empty tree yields an empty table.
func (ct *CodeTable) Init(t Tree) {
	*ct = CodeTable{}
	if t.root != nil {
		ct.walk(t.root, Code{})
	}
}

func (ct *CodeTable) walk(n Node, prefix Code) {
	switch x := n.(type) {
	case nil:
		// absent child of a single-symbol root
	case Leaf:
		ct.codes[x.Symbol] = prefix
		size := prefix.Size
		if ct.numSymbols == 0 {
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
		ct.numSymbols++
	case *Internal:
		ct.walk(x.Left, prefix.Append(0))
		ct.walk(x.Right, prefix.Append(1))
	default:
		panic(fmt.Errorf("huffman: unknown node type %T", n))
	}
}

// Lookup returns the codeword for a Symbol.  Symbols absent from the table
// have a zero-sized Code.
func (ct CodeTable) Lookup(symbol Symbol) Code {
	return ct.codes[symbol]
}

// Has reports whether symbol has a codeword.
func (ct CodeTable) Has(symbol Symbol) bool {
	return ct.codes[symbol].Size != 0
}

// Len returns the number of symbols with a codeword.
func (ct CodeTable) Len() int {
	return ct.numSymbols
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a codeword.
func (ct CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		hc := ct.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", Symbol(symbol), hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (ct CodeTable) DebugString() string {
	var sb strings.Builder
	_, _ = ct.Dump(&sb)
	return sb.String()
}

// String returns a one-line summary of this CodeTable.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)",
		ct.numSymbols, ct.minSize, ct.maxSize)
}

var _ fmt.Stringer = CodeTable{}
