package huffman

import (
	"errors"
	"io"
)

// writeHeader writes freq as NumSymbols big-endian 32-bit counts in byte
// order.
func writeHeader(w *bitWriter, freq FrequencyTable) error {
	for _, count := range freq {
		if err := w.WriteUint32(count); err != nil {
			return err
		}
	}
	return nil
}

// readHeader reads the frequency header.  A source that ends before all
// HeaderSize bytes are read yields a *FormatError.
func readHeader(r *bitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for symbol := range freq {
		count, err := r.ReadUint32()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return FrequencyTable{}, &FormatError{
				Offset:  r.BitsRead(),
				Problem: "short frequency header",
				Err:     err,
			}
		}
		if err != nil {
			return FrequencyTable{}, err
		}
		freq[symbol] = count
	}
	return freq, nil
}
