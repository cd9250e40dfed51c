package huffman

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1f2e3d4c))

	inputs := [][]byte{
		nil,
		{0x41},
		{0x41, 0x41, 0x41, 0x41, 0x41},
		[]byte("aaabbc"),
		[]byte("a man a plan a canal panama"),
	}

	all := make([]byte, NumSymbols)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all)

	// Fibonacci counts produce the deepest possible tree for their size.
	var fib []byte
	a, b := 1, 1
	for symbol := 0; symbol < 20; symbol++ {
		fib = append(fib, bytes.Repeat([]byte{byte(symbol)}, a)...)
		a, b = b, a+b
	}
	inputs = append(inputs, fib)

	for i := 0; i < 40; i++ {
		size := rng.Intn(4096)
		alphabet := 1 + rng.Intn(NumSymbols)
		data := make([]byte, size)
		for j := range data {
			data[j] = byte(rng.Intn(alphabet))
		}
		inputs = append(inputs, data)
	}

	for i, input := range inputs {
		encoded, err := EncodeBytes(input)
		require.NoError(t, err, "input #%d", i)
		decoded, err := DecodeBytes(encoded)
		require.NoError(t, err, "input #%d", i)
		require.Equal(t, len(input), len(decoded), "input #%d", i)
		require.True(t, bytes.Equal(input, decoded), "input #%d did not round-trip", i)
	}
}

func TestDecoder_Empty(t *testing.T) {
	d, err := NewDecoder(bytes.NewReader(make([]byte, HeaderSize)))
	require.NoError(t, err)
	require.Equal(t, uint64(0), d.Total())

	n, err := d.Read(make([]byte, 16))
	require.Equal(t, 0, n)
	require.Equal(t, io.EOF, err)
}

func TestDecoder_IgnoresPadding(t *testing.T) {
	encoded, err := EncodeBytes([]byte("aaabbc"))
	require.NoError(t, err)

	// Set every padding bit of the final byte and append trailing garbage.
	encoded[len(encoded)-1] |= 0x7f
	encoded = append(encoded, 0xff, 0xff)

	decoded, err := DecodeBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("aaabbc"), decoded)
}

func TestDecoder_SmallReads(t *testing.T) {
	input := []byte("small reads still see every byte")
	encoded, err := EncodeBytes(input)
	require.NoError(t, err)

	d, err := NewDecoder(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, uint64(len(input)), d.Total())
	require.Equal(t, freqOf(string(input)), d.Frequencies())

	var out []byte
	p := make([]byte, 3)
	for {
		n, err := d.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.Equal(t, input, out)
	require.Equal(t, uint64(0), d.Remaining())
}

func TestDecoder_TruncatedPayload(t *testing.T) {
	encoded, err := EncodeBytes([]byte("hello, world"))
	require.NoError(t, err)

	_, err = DecodeBytes(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, ErrStreamTruncated)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var te *TruncatedError
	require.True(t, errors.As(err, &te))
	require.Equal(t, uint64(12), te.Expected)
	require.Less(t, te.Decoded, te.Expected)
}

func TestDecoder_ShortHeader(t *testing.T) {
	for _, size := range []int{0, 3, HeaderSize - 1} {
		_, err := DecodeBytes(make([]byte, size))
		require.ErrorIs(t, err, ErrFormat, "size %d", size)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "size %d", size)
	}
}

func TestDecoder_AbsentBranch(t *testing.T) {
	encoded, err := EncodeBytes([]byte("AA"))
	require.NoError(t, err)
	encoded[HeaderSize] = 0x80

	_, err = DecodeBytes(encoded)
	require.ErrorIs(t, err, ErrFormat)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, uint64(HeaderSize*8), fe.Offset)
}
