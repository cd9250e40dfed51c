package huffman

import (
	"fmt"
	"strconv"
)

// Symbol represents one byte value of the input alphabet.
type Symbol uint8

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// HeaderSize is the size in bytes of the frequency header that prefixes every
// encoded stream: one 32-bit count per Symbol.
const HeaderSize = NumSymbols * 4

// String returns a quoted character for printable ASCII and a hex literal for
// everything else.
func (s Symbol) String() string {
	if s < 0x80 && strconv.IsPrint(rune(s)) {
		return strconv.QuoteRune(rune(s))
	}
	return fmt.Sprintf("0x%02x", uint8(s))
}

var _ fmt.Stringer = Symbol(0)
