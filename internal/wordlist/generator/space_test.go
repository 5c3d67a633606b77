package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/alphabet"
)

func TestSpace_Total(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		minLen   int
		maxLen   int
		want     uint64
	}{
		{
			name:     "alphabet size 2, lengths 1..1",
			alphabet: "ab",
			minLen:   1,
			maxLen:   1,
			want:     2,
		},
		{
			name:     "alphabet size 2, lengths 1..2",
			alphabet: "ab",
			minLen:   1,
			maxLen:   2,
			want:     6, // 2 + 4
		},
		{
			name:     "alphabet size 2, lengths 2..3",
			alphabet: "ab",
			minLen:   2,
			maxLen:   3,
			want:     12, // 4 + 8
		},
		{
			name:     "alphabet size 3, lengths 1..2",
			alphabet: "abc",
			minLen:   1,
			maxLen:   2,
			want:     12, // 3 + 9
		},
		{
			name:     "zero length only",
			alphabet: "abc",
			minLen:   0,
			maxLen:   0,
			want:     1, // the empty word
		},
		{
			name:     "zero through one",
			alphabet: "abc",
			minLen:   0,
			maxLen:   1,
			want:     4, // "" plus 3 single characters
		},
		{
			name:     "alphabet size 36, lengths 1..2",
			alphabet: "abcdefghijklmnopqrstuvwxyz0123456789",
			minLen:   1,
			maxLen:   2,
			want:     36 + 36*36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpace(alphabet.Alphabet(tt.alphabet), tt.minLen, tt.maxLen)
			assert.Equal(t, tt.want, s.Total())
		})
	}
}

func TestSpace_FillWord(t *testing.T) {
	t.Run("alphabet ab, lengths 1..2", func(t *testing.T) {
		// 0 -> a, 1 -> b, 2 -> aa, 3 -> ab, 4 -> ba, 5 -> bb
		s := NewSpace(alphabet.Alphabet("ab"), 1, 2)
		buf := make([]rune, 2)

		tests := []struct {
			index   uint64
			want    string
			wantLen int
		}{
			{0, "a", 1},
			{1, "b", 1},
			{2, "aa", 2},
			{3, "ab", 2},
			{4, "ba", 2},
			{5, "bb", 2},
		}

		for _, tt := range tests {
			length, ok := s.FillWord(tt.index, buf)
			assert.True(t, ok, "index %d", tt.index)
			assert.Equal(t, tt.wantLen, length, "index %d", tt.index)
			assert.Equal(t, tt.want, string(buf[:length]), "index %d", tt.index)
		}
	})

	t.Run("range starting above one skips shorter words", func(t *testing.T) {
		// 0 -> aa, 3 -> bb, 4 -> aaa
		s := NewSpace(alphabet.Alphabet("ab"), 2, 3)
		buf := make([]rune, 3)

		length, ok := s.FillWord(0, buf)
		assert.True(t, ok)
		assert.Equal(t, "aa", string(buf[:length]))

		length, ok = s.FillWord(3, buf)
		assert.True(t, ok)
		assert.Equal(t, "bb", string(buf[:length]))

		length, ok = s.FillWord(4, buf)
		assert.True(t, ok)
		assert.Equal(t, "aaa", string(buf[:length]))
	})

	t.Run("out of range index", func(t *testing.T) {
		s := NewSpace(alphabet.Alphabet("ab"), 1, 2)
		buf := make([]rune, 2)

		_, ok := s.FillWord(6, buf)
		assert.False(t, ok)

		_, ok = s.FillWord(100, buf)
		assert.False(t, ok)
	})

	t.Run("zero length decodes to the empty word", func(t *testing.T) {
		s := NewSpace(alphabet.Alphabet("ab"), 0, 1)
		buf := make([]rune, 1)

		length, ok := s.FillWord(0, buf)
		assert.True(t, ok)
		assert.Equal(t, 0, length)

		length, ok = s.FillWord(1, buf)
		assert.True(t, ok)
		assert.Equal(t, "a", string(buf[:length]))
	})
}

func TestSpace_MatchesGenerator(t *testing.T) {
	alpha := alphabet.Alphabet("abc")
	s := NewSpace(alpha, 1, 3)
	g := New(alpha, 1, 3, nil)

	buf := make([]rune, 3)

	var index uint64
	for word := range g.Words() {
		length, ok := s.FillWord(index, buf)
		assert.True(t, ok, "index %d", index)
		assert.Equal(t, word, string(buf[:length]), "index %d", index)
		index++
	}

	assert.Equal(t, s.Total(), index)
}
