package huffman

import (
	"os"
	"testing"

	"github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logging.SetLevel(logging.WARNING, "huffman")
	os.Exit(m.Run())
}
