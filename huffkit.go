// Package huffkit encodes byte streams with Huffman codes built from their own
// symbol frequencies and reports the logical bit saving.
//
// A Session runs the whole pipeline: it reads a stream.SymbolSource once,
// counts symbol frequencies, builds the code tree and code book, writes the
// encoded stream to a stream.SymbolSink and hands a report.Summary to its
// report.Reporter.
//
// # Output modes
//
// format.ModeText (the default) writes one code word per input symbol as a
// line of '0' and '1' characters. It shows the codes but is larger on disk
// than the input; the reported saving counts logical bits, not bytes written.
//
// format.ModePacked writes a self-describing container (see package blob)
// with the frequency table, the bit-packed payload and an optional second
// stage compression. Packed output can be decoded back with Session.Decode.
//
// # Basic Usage
//
//	reporter, _ := report.NewTextReporter()
//	session, _ := huffkit.NewSession(
//	    huffkit.WithOutputMode(format.ModePacked),
//	    huffkit.WithCompression(format.CompressionZstd),
//	    huffkit.WithReporter(reporter),
//	)
//	res, err := session.Encode(stream.NewFileSource("in.txt"), stream.NewFileSink("out.huf"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Stats.Saved())
//
// For in-memory use, Pack and Unpack wrap a default packed session.
package huffkit

import (
	"fmt"
	"slices"

	"github.com/arloliu/huffkit/blob"
	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/format"
	"github.com/arloliu/huffkit/internal/options"
	"github.com/arloliu/huffkit/report"
	"github.com/arloliu/huffkit/stream"
)

// Config holds the settings of a Session.
type Config struct {
	mode        format.OutputMode
	reporter    report.Reporter
	encoderOpts []blob.EncoderOption
	decoderOpts []blob.DecoderOption
}

// Option is a functional option for configuring a Session.
type Option = options.Option[*Config]

// WithOutputMode selects text or packed output. Default is format.ModeText.
func WithOutputMode(mode format.OutputMode) Option {
	return options.New(func(cfg *Config) error {
		switch mode {
		case format.ModeText, format.ModePacked:
			cfg.mode = mode
			return nil
		default:
			return fmt.Errorf("invalid output mode: %v", mode)
		}
	})
}

// WithReporter sets the receiver of session summaries. Default is report.Discard.
func WithReporter(r report.Reporter) Option {
	return options.New(func(cfg *Config) error {
		if r == nil {
			return fmt.Errorf("reporter must not be nil")
		}
		cfg.reporter = r

		return nil
	})
}

// WithCompression selects the second-stage codec of packed output.
// It has no effect in text mode.
func WithCompression(comp format.CompressionType) Option {
	return options.NoError(func(cfg *Config) {
		cfg.encoderOpts = append(cfg.encoderOpts, blob.WithCompression(comp))
	})
}

// WithBigEndian writes packed container headers big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.encoderOpts = append(cfg.encoderOpts, blob.WithBigEndian())
	})
}

// WithDecoderCacheSize sets how many rebuilt code trees Decode keeps cached.
func WithDecoderCacheSize(size int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.decoderOpts = append(cfg.decoderOpts, blob.WithCacheSize(size))
	})
}

// Result describes a completed encoding.
type Result struct {
	Table *coding.FrequencyTable[byte]
	Book  *coding.CodeBook[byte]
	Stats coding.Stats
}

// Session encodes and decodes symbol streams with a fixed configuration.
// A Session holds no per-run state and may be reused.
type Session struct {
	mode     format.OutputMode
	reporter report.Reporter
	encoder  *blob.Encoder
	decoder  *blob.Decoder
}

// NewSession creates a Session.
func NewSession(opts ...Option) (*Session, error) {
	cfg := &Config{mode: format.ModeText, reporter: report.Discard}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	encoder, err := blob.NewEncoder(cfg.encoderOpts...)
	if err != nil {
		return nil, err
	}
	decoder, err := blob.NewDecoder(cfg.decoderOpts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		mode:     cfg.mode,
		reporter: cfg.reporter,
		encoder:  encoder,
		decoder:  decoder,
	}, nil
}

// Mode returns the output mode of the session.
func (s *Session) Mode() format.OutputMode {
	return s.mode
}

// Encode reads all symbols of src, encodes them and writes the output to sink.
// The summary is reported only after the sink accepted the output.
//
// Errors from src wrap errs.ErrSourceUnavailable and errors from sink wrap
// errs.ErrSinkUnavailable.
func (s *Session) Encode(src stream.SymbolSource, sink stream.SymbolSink) (*Result, error) {
	symbols, err := src.Symbols()
	if err != nil {
		return nil, err
	}

	table := coding.NewFrequencyTable(symbols)

	var res *Result
	switch s.mode {
	case format.ModePacked:
		b, err := s.encoder.EncodeWithTable(symbols, table)
		if err != nil {
			return nil, err
		}
		if err := sink.WriteBlob(b.Bytes()); err != nil {
			return nil, err
		}
		res = &Result{Table: table, Book: b.CodeBook(), Stats: b.Stats()}
	default:
		book := coding.NewCodeBook(coding.BuildTree(table))
		stats, err := coding.Measure(table, book)
		if err != nil {
			return nil, err
		}
		if err := sink.WriteCodes(book.Encode(slices.Values(symbols))); err != nil {
			return nil, err
		}
		res = &Result{Table: table, Book: book, Stats: stats}
	}

	if err := s.reporter.Report(report.Summary{Table: res.Table, Book: res.Book, Stats: res.Stats}); err != nil {
		return res, err
	}

	return res, nil
}

// Decode reads a packed container from src and writes the original symbols to
// sink. Text-mode output carries no code book and cannot be decoded.
func (s *Session) Decode(src stream.SymbolSource, sink stream.SymbolSink) error {
	data, err := src.Symbols()
	if err != nil {
		return err
	}

	symbols, err := s.decoder.Decode(data)
	if err != nil {
		return err
	}

	return sink.WriteBlob(symbols)
}

var defaultPacker = func() *Session {
	s, err := NewSession(WithOutputMode(format.ModePacked))
	if err != nil {
		panic(err)
	}

	return s
}()

// Pack encodes data into a packed container with default settings.
func Pack(data []byte) ([]byte, error) {
	sink := stream.NewBufferSink()
	if _, err := defaultPacker.Encode(stream.NewBytesSource(data), sink); err != nil {
		return nil, err
	}

	return sink.Bytes(), nil
}

// Unpack decodes a container produced by Pack or by a packed Session.
func Unpack(data []byte) ([]byte, error) {
	sink := stream.NewBufferSink()
	if err := defaultPacker.Decode(stream.NewBytesSource(data), sink); err != nil {
		return nil, err
	}

	return sink.Bytes(), nil
}
