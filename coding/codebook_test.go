package coding

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffkit/errs"
)

func requirePrefixFree[S byte | int | string](t *testing.T, book *CodeBook[S]) {
	t.Helper()
	for a, ca := range book.All() {
		for b, cb := range book.All() {
			if a == b {
				continue
			}
			require.Falsef(t, cb.HasPrefix(ca), "code %s of %v is a prefix of code %s of %v", ca, a, cb, b)
		}
	}
}

func TestNewCodeBook(t *testing.T) {
	t.Run("classic example", func(t *testing.T) {
		ft := classicTable(t)
		book := NewCodeBook(BuildTree(ft))

		want := map[byte]string{
			'f': "0",
			'c': "100",
			'd': "101",
			'a': "1100",
			'b': "1101",
			'e': "111",
		}
		for s, code := range want {
			c, ok := book.Code(s)
			require.True(t, ok)
			require.Equalf(t, code, c.String(), "symbol %c", s)
		}
		require.Equal(t, 6, book.Len())
		wl, ok := book.WeightedLength(ft)
		require.True(t, ok)
		require.Equal(t, uint64(224), wl)
		requirePrefixFree(t, book)
	})

	t.Run("empty", func(t *testing.T) {
		book := NewCodeBook[byte](nil)
		require.Zero(t, book.Len())
		require.Empty(t, book.Symbols())
	})

	t.Run("single symbol gets a one-bit code", func(t *testing.T) {
		book := NewCodeBook(BuildTree(NewFrequencyTable([]byte{0x00, 0x00, 0x00})))
		c, ok := book.Code(0x00)
		require.True(t, ok)
		require.Equal(t, "0", c.String())
		require.Equal(t, 1, c.Len())
	})

	t.Run("unknown symbol", func(t *testing.T) {
		book := NewCodeBook(BuildTree(NewFrequencyTable([]byte("ab"))))
		_, ok := book.Code('z')
		require.False(t, ok)
	})
}

func TestCodeBook_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 50 {
		n := 2 + rng.IntN(300)
		input := make([]byte, n)
		for j := range input {
			// Skewed distribution over a variable alphabet.
			input[j] = byte(rng.IntN(1 + rng.IntN(256)))
		}
		ft := NewFrequencyTable(input)
		if ft.Len() < 2 {
			continue
		}
		book := NewCodeBook(BuildTree(ft))
		require.Equal(t, ft.Len(), book.Len(), "iteration %d", i)
		requirePrefixFree(t, book)
	}
}

func TestCodeBook_Deterministic(t *testing.T) {
	input := []byte("she sells sea shells by the sea shore; the shells she sells are surely seashells")

	first := NewCodeBook(BuildTree(NewFrequencyTable(input)))
	for range 20 {
		again := NewCodeBook(BuildTree(NewFrequencyTable(input)))
		require.Equal(t, first.Symbols(), again.Symbols())
		for s, c := range first.All() {
			got, ok := again.Code(s)
			require.True(t, ok)
			require.Equal(t, c, got)
		}
	}
}

func TestCodeBookFromCodes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		book, err := CodeBookFromCodes(map[byte]Code{
			'a': MustParseCode("0"),
			'b': MustParseCode("10"),
			'c': MustParseCode("11"),
		})
		require.NoError(t, err)
		require.Equal(t, []byte("abc"), book.Symbols())
	})

	t.Run("prefix is rejected", func(t *testing.T) {
		_, err := CodeBookFromCodes(map[byte]Code{
			'a': MustParseCode("1"),
			'b': MustParseCode("10"),
			'c': MustParseCode("0"),
		})
		require.ErrorIs(t, err, errs.ErrInvalidCodeBook)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		_, err := CodeBookFromCodes(map[byte]Code{
			'a': MustParseCode("01"),
			'b': MustParseCode("01"),
		})
		require.ErrorIs(t, err, errs.ErrInvalidCodeBook)
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := CodeBookFromCodes(map[byte]Code{'a': {}})
		require.ErrorIs(t, err, errs.ErrInvalidCodeBook)
	})

	t.Run("empty book", func(t *testing.T) {
		book, err := CodeBookFromCodes[byte](nil)
		require.NoError(t, err)
		require.Zero(t, book.Len())
	})
}

func TestCodeBook_Encode(t *testing.T) {
	input := []byte("abracadabra")
	book := NewCodeBook(BuildTree(NewFrequencyTable(input)))

	t.Run("one code per symbol in input order", func(t *testing.T) {
		var got []Code
		for c, err := range book.Encode(slices.Values(input)) {
			require.NoError(t, err)
			got = append(got, c)
		}
		require.Len(t, got, len(input))
		for i, s := range input {
			want, _ := book.Code(s)
			require.Equal(t, want, got[i])
		}
	})

	t.Run("unknown symbol stops the sequence", func(t *testing.T) {
		var (
			n   int
			err error
		)
		for _, e := range book.Encode(slices.Values([]byte("abz"))) {
			if e != nil {
				err = e
				break
			}
			n++
		}
		require.Equal(t, 2, n)
		require.ErrorIs(t, err, errs.ErrSymbolNotInCodebook)
	})

	t.Run("consumer may stop early", func(t *testing.T) {
		n := 0
		for range book.Encode(slices.Values(input)) {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}

type collectSink struct {
	codes []Code
	fail  error
}

func (s *collectSink) WriteCode(c Code) error {
	if s.fail != nil {
		return s.fail
	}
	s.codes = append(s.codes, c)

	return nil
}

func TestCodeBook_EncodeTo(t *testing.T) {
	input := []byte("mississippi")
	ft := NewFrequencyTable(input)
	book := NewCodeBook(BuildTree(ft))

	sink := &collectSink{}
	stats, err := book.EncodeTo(sink, slices.Values(input))
	require.NoError(t, err)
	require.Len(t, sink.codes, len(input))
	measured, err := Measure(ft, book)
	require.NoError(t, err)
	require.Equal(t, measured, stats)

	_, err = book.EncodeTo(&collectSink{fail: errs.ErrSinkUnavailable}, slices.Values(input))
	require.ErrorIs(t, err, errs.ErrSinkUnavailable)

	_, err = book.EncodeTo(&collectSink{}, slices.Values([]byte("x")))
	require.ErrorIs(t, err, errs.ErrSymbolNotInCodebook)
}

func TestEncode(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		book, bits, stats, err := Encode([]byte{})
		require.NoError(t, err)
		require.Zero(t, book.Len())
		require.Zero(t, bits.Len())
		require.Zero(t, stats.Saved())
		require.Zero(t, stats.Symbols)
	})

	t.Run("bits are the concatenated code words", func(t *testing.T) {
		book, bits, stats, err := Encode([]byte("aab"))
		require.NoError(t, err)

		a, _ := book.Code('a')
		b, _ := book.Code('b')
		require.Equal(t, Join(a, a, b), bits)
		require.Equal(t, uint64(3), stats.Symbols)
		require.Equal(t, uint64(bits.Len()), stats.PostBits)
	})
}
