package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffpack"
)

var log = logging.MustGetLogger("huffman/cli")

const progName = "huffman"
const usageMessageRaw = `
Usage: huffman [OPTIONS] COMMAND INPUT [OUTPUT]

Options:
  --debug, -d
	Log debugging detail to standard error.

Commands:
  encode INPUT [OUTPUT]
	Huffman-encode INPUT.  Writes to OUTPUT, or to standard output
	if OUTPUT is omitted.
  decode INPUT [OUTPUT]
	Decode a file produced by encode.
  table INPUT
	Print the code table that encode would use for INPUT.
`

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func optionalArg() (string, bool) {
	if !(argI < ourFlags.NArg()) {
		return "", false
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg, true
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// openOutput returns a buffered writer for path, or for standard output if
// path is empty.  The returned finish func flushes and closes; it must be
// called on every path.
func openOutput(path string, given bool) (io.Writer, func() error, error) {
	if !given {
		log.Warning("no output given; writing to standard output")
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	finish := func() error {
		err := bw.Flush()
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return bw, finish, nil
}

func transcode(op func(io.Writer, io.Reader) error, inPath string, outPath string, outGiven bool) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); err == nil {
			err = closeErr
		}
	}()

	out, finish, err := openOutput(outPath, outGiven)
	if err != nil {
		return err
	}
	defer func() {
		if finishErr := finish(); err == nil {
			err = finishErr
		}
	}()

	return op(out, in)
}

func printTable(inPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	freq, err := huffman.CountFrequencies(bufio.NewReader(in))
	if err != nil {
		return err
	}
	ct, err := huffman.NewCodeTable(freq)
	if err != nil {
		return err
	}
	log.Infof("%d bytes, %v", freq.Total(), ct)
	_, err = ct.Dump(os.Stdout)
	return err
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	var err error
	command := nextArg("COMMAND")
	switch command {
	default:
		usageErrorf("bad command \"%s\"", command)
	case "encode", "decode":
		inPath := nextArg("INPUT")
		outPath, outGiven := optionalArg()
		op := huffman.Encode
		if command == "decode" {
			op = huffman.Decode
		}
		err = transcode(op, inPath, outPath, outGiven)
	case "table":
		err = printTable(nextArg("INPUT"))
	}

	if argI < ourFlags.NArg() {
		log.Warningf("ignoring %d extra arguments", ourFlags.NArg()-argI)
	}
	if err != nil {
		exitError(err)
	}
}
