package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrQueueUnderflow is returned by PriorityQueue.ExtractMin when the
	// queue is empty.
	ErrQueueUnderflow = errors.New("huffman: priority queue underflow")

	// ErrStreamTruncated matches any *TruncatedError.
	ErrStreamTruncated = errors.New("huffman: stream truncated")

	// ErrFormat matches any *FormatError.
	ErrFormat = errors.New("huffman: malformed stream")

	// ErrCountOverflow is returned when a byte occurs more often than a
	// 32-bit header count can record.
	ErrCountOverflow = errors.New("huffman: frequency count exceeds 32 bits")

	// ErrFrequencyMismatch is returned by Encoder when the bytes written to
	// it disagree with the frequency table it was built from.
	ErrFrequencyMismatch = errors.New("huffman: input does not match frequency table")
)

// FormatError reports an encoded stream whose header or codewords cannot be
// interpreted.
type FormatError struct {
	// Offset is the bit offset into the encoded stream where the problem
	// was detected.
	Offset  uint64
	Problem string
	Err     error
}

func (e *FormatError) Error() string {
	str := fmt.Sprintf("huffman: malformed stream at bit %d: %s", e.Offset, e.Problem)
	if e.Err != nil {
		str += ": " + e.Err.Error()
	}
	return str
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// TruncatedError reports that the payload ended before the number of bytes
// promised by the header had been decoded.
type TruncatedError struct {
	Decoded  uint64
	Expected uint64
	Err      error
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("huffman: stream truncated after %d of %d bytes: %v", e.Decoded, e.Expected, e.Err)
}

func (e *TruncatedError) Unwrap() error {
	return e.Err
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrStreamTruncated
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*TruncatedError)(nil)
)
