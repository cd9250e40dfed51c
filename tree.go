package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is a node of a Huffman tree: either a Leaf or an *Internal.
type Node interface {
	isNode()
}

// Leaf is a tree node that carries a byte value.
type Leaf struct {
	Symbol Symbol
}

// Internal is a tree node with two children.  Only the root of a
// single-symbol tree has an absent (nil) Right child.
type Internal struct {
	Left  Node
	Right Node
}

func (Leaf) isNode()      {}
func (*Internal) isNode() {}

// Tree is a Huffman code tree.  The zero Tree is the empty tree, which has no
// symbols and encodes nothing.
type Tree struct {
	root   Node
	leaves int
}

// BuildTree constructs the Huffman tree for freq.
//
// Construction is deterministic: every byte with a nonzero count enters the
// queue in byte order, ties between equal weights are broken by rank (leaves
// rank by byte value, merged nodes after all leaves in order of creation), and
// the first of each extracted pair becomes the left child.  An encoder and a
// decoder that see the same FrequencyTable therefore build identical trees.
//
// A single distinct symbol yields an Internal root whose Right child is
// absent, so that the symbol gets the 1-bit code "0".
//
func BuildTree(freq FrequencyTable) (Tree, error) {
	pq := NewPriorityQueue(NumSymbols)
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		pq.Insert(Element{
			Key:  uint64(count),
			Rank: uint32(symbol),
			Node: Leaf{Symbol(symbol)},
		})
	}

	leaves := pq.Len()
	switch leaves {
	case 0:
		return Tree{}, nil
	case 1:
		only, err := pq.ExtractMin()
		if err != nil {
			return Tree{}, err
		}
		return Tree{root: &Internal{Left: only.Node}, leaves: 1}, nil
	}

	nextRank := uint32(NumSymbols)
	for pq.Len() > 1 {
		a, err := pq.ExtractMin()
		if err != nil {
			return Tree{}, err
		}
		b, err := pq.ExtractMin()
		if err != nil {
			return Tree{}, err
		}
		pq.Insert(Element{
			Key:  a.Key + b.Key,
			Rank: nextRank,
			Node: &Internal{Left: a.Node, Right: b.Node},
		})
		nextRank++
	}

	root, err := pq.ExtractMin()
	if err != nil {
		return Tree{}, err
	}
	return Tree{root: root.Node, leaves: leaves}, nil
}

// Root returns the root node, or nil for the empty tree.
func (t Tree) Root() Node {
	return t.root
}

// IsEmpty reports whether the tree has no symbols.
func (t Tree) IsEmpty() bool {
	return t.root == nil
}

// Leaves returns the number of symbols in the tree.
func (t Tree) Leaves() int {
	return t.leaves
}

// Dump writes an indented rendering of the tree to w.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t.root != nil {
		dumpNode(&buf, t.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch x := n.(type) {
	case nil:
		fmt.Fprintf(buf, "%s-\n", indent)
	case Leaf:
		fmt.Fprintf(buf, "%s%s\n", indent, x.Symbol)
	case *Internal:
		fmt.Fprintf(buf, "%s*\n", indent)
		dumpNode(buf, x.Left, depth+1)
		dumpNode(buf, x.Right, depth+1)
	default:
		panic(fmt.Errorf("huffman: unknown node type %T", n))
	}
}
