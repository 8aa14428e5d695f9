package stream

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffkit/coding"
	"github.com/arloliu/huffkit/errs"
)

func codesOf(words ...string) iter.Seq2[coding.Code, error] {
	return func(yield func(coding.Code, error) bool) {
		for _, w := range words {
			if !yield(coding.MustParseCode(w), nil) {
				return
			}
		}
	}
}

func failingCodes(err error, words ...string) iter.Seq2[coding.Code, error] {
	return func(yield func(coding.Code, error) bool) {
		for c, e := range codesOf(words...) {
			if !yield(c, e) {
				return
			}
		}
		yield(coding.Code{}, err)
	}
}

func TestBufferSink(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		sink := NewBufferSink()
		require.NoError(t, sink.WriteCodes(codesOf("0", "100", "0", "1101")))
		require.Equal(t, "0\n100\n0\n1101\n", sink.String())
	})

	t.Run("no codes", func(t *testing.T) {
		sink := NewBufferSink()
		require.NoError(t, sink.WriteCodes(codesOf()))
		require.Empty(t, sink.Bytes())
	})

	t.Run("blob replaces text", func(t *testing.T) {
		sink := NewBufferSink()
		require.NoError(t, sink.WriteCodes(codesOf("01")))
		require.NoError(t, sink.WriteBlob([]byte{1, 2, 3}))
		require.Equal(t, []byte{1, 2, 3}, sink.Bytes())
	})

	t.Run("error keeps previous output", func(t *testing.T) {
		sink := NewBufferSink()
		require.NoError(t, sink.WriteCodes(codesOf("1")))

		err := sink.WriteCodes(failingCodes(errs.ErrSymbolNotInCodebook, "0", "0"))
		require.ErrorIs(t, err, errs.ErrSymbolNotInCodebook)
		require.NotErrorIs(t, err, errs.ErrSinkUnavailable)
		require.Equal(t, "1\n", sink.String())
	})

	t.Run("larger than token buffer", func(t *testing.T) {
		words := make([]string, 5000)
		for i := range words {
			words[i] = "10110"
		}
		sink := NewBufferSink()
		require.NoError(t, sink.WriteCodes(codesOf(words...)))
		require.Equal(t, strings.Repeat("10110\n", 5000), sink.String())
	})
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()

	listDir := func(t *testing.T) []string {
		t.Helper()
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}

		return names
	}

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "codes.txt")
		sink := NewFileSink(path)
		require.Equal(t, path, sink.Path())
		require.NoError(t, sink.WriteCodes(codesOf("0", "10", "11")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "0\n10\n11\n", string(data))
	})

	t.Run("blob overwrites", func(t *testing.T) {
		path := filepath.Join(dir, "out.bin")
		require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o600))

		require.NoError(t, NewFileSink(path).WriteBlob([]byte{0xF1, 0xA0}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, []byte{0xF1, 0xA0}, data)
	})

	t.Run("failed write leaves no output", func(t *testing.T) {
		path := filepath.Join(dir, "partial.txt")
		boom := errors.New("boom")

		err := NewFileSink(path).WriteCodes(failingCodes(boom, "0", "1"))
		require.ErrorIs(t, err, boom)

		_, statErr := os.Stat(path)
		require.ErrorIs(t, statErr, os.ErrNotExist)
		require.ElementsMatch(t, []string{"codes.txt", "out.bin"}, listDir(t))
	})

	t.Run("new file permission", func(t *testing.T) {
		path := filepath.Join(dir, "codes.txt")
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, DefaultFileMode, info.Mode().Perm())
	})

	t.Run("replaced file keeps permission", func(t *testing.T) {
		path := filepath.Join(dir, "private.bin")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, NewFileSink(path).WriteBlob([]byte("new")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		require.NoError(t, os.Remove(path))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := NewFileSink(filepath.Join(dir, "nope", "out.txt")).WriteBlob([]byte("x"))
		require.ErrorIs(t, err, errs.ErrSinkUnavailable)
	})
}
