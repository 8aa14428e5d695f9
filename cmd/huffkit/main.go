// Command huffkit encodes files with Huffman codes and decodes packed output.
//
// Usage:
//
//	huffkit encode [-packed] [-compression none|zstd|s2|lz4] [-big-endian] [-full-range] <input> <output>
//	huffkit decode <input> <output>
//
// encode prints the frequency and code word of every input symbol followed by
// the number of bits saved. Without -packed the output file holds one code
// word per line; with -packed it holds a binary container that decode turns
// back into the original file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/huffkit"
	"github.com/arloliu/huffkit/format"
	"github.com/arloliu/huffkit/report"
	"github.com/arloliu/huffkit/stream"
)

const usage = `usage:
  huffkit encode [-packed] [-compression none|zstd|s2|lz4] [-big-endian] [-full-range] <input> <output>
  huffkit decode <input> <output>
`

var errUsage = errors.New("invalid arguments")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffkit: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:], stdout, stderr)
	case "decode":
		return runDecode(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runEncode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	packed := fs.Bool("packed", false, "write a bit-packed container instead of text code words")
	compression := fs.String("compression", "none", "second-stage compression of packed output: none, zstd, s2 or lz4")
	bigEndian := fs.Bool("big-endian", false, "write the packed header big-endian")
	fullRange := fs.Bool("full-range", false, "report symbols 128-255 as well")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: encode needs <input> <output>", errUsage)
	}

	comp, ok := format.ParseCompression(*compression)
	if !ok {
		return fmt.Errorf("%w: unknown compression %q", errUsage, *compression)
	}

	repOpts := []report.Option{report.WithWriter(stdout)}
	if *fullRange {
		repOpts = append(repOpts, report.WithFullRange())
	}
	rep, err := report.NewTextReporter(repOpts...)
	if err != nil {
		return err
	}

	opts := []huffkit.Option{huffkit.WithReporter(rep), huffkit.WithCompression(comp)}
	if *packed {
		opts = append(opts, huffkit.WithOutputMode(format.ModePacked))
	}
	if *bigEndian {
		opts = append(opts, huffkit.WithBigEndian())
	}

	session, err := huffkit.NewSession(opts...)
	if err != nil {
		return err
	}

	if _, err := session.Encode(stream.NewFileSource(fs.Arg(0)), stream.NewFileSink(fs.Arg(1))); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "finished")

	return nil
}

func runDecode(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: decode needs <input> <output>", errUsage)
	}

	session, err := huffkit.NewSession()
	if err != nil {
		return err
	}

	if err := session.Decode(stream.NewFileSource(fs.Arg(0)), stream.NewFileSink(fs.Arg(1))); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "finished")

	return nil
}
