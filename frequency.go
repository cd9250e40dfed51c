package huffman

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// FrequencyTable holds the number of occurrences of each byte value in a
// stream.  The sum of all counts equals the length of the stream.
//
// A FrequencyTable is an io.Writer, so a stream can be counted with:
//
//     var freq FrequencyTable
//     _, err := io.Copy(&freq, r)
//
type FrequencyTable [NumSymbols]uint32

// CountFrequencies reads r to EOF and returns its byte counts.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var freq FrequencyTable
	_, err := io.Copy(&freq, r)
	return freq, err
}

// Write adds the bytes of p to the table.  If any count would overflow, Write
// stops at that byte and returns ErrCountOverflow.
func (freq *FrequencyTable) Write(p []byte) (int, error) {
	for i, b := range p {
		if freq[b] == math.MaxUint32 {
			return i, fmt.Errorf("%w: byte %s", ErrCountOverflow, Symbol(b))
		}
		freq[b]++
	}
	return len(p), nil
}

// Total returns the sum of all counts, i.e. the length of the counted stream.
func (freq FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += uint64(count)
	}
	return sum
}

// Distinct returns the number of byte values with a nonzero count.
func (freq FrequencyTable) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// String lists the nonzero counts in byte order.
func (freq FrequencyTable) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %d", Symbol(symbol), count)
	}
	sb.WriteByte('}')
	return sb.String()
}

var (
	_ io.Writer    = (*FrequencyTable)(nil)
	_ fmt.Stringer = FrequencyTable{}
)
