package generator

import "github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/alphabet"

// Space gives closed-form sizes for the words a Generator enumerates over a
// length range, before pattern filtering.
type Space struct {
	alphabet []rune
	base     uint64
	minLen   int
	maxLen   int

	powers []uint64

	// prefix[l] = number of words of length minLen through l, 0 for l < minLen
	prefix []uint64
}

func NewSpace(a alphabet.Alphabet, minLen, maxLen int) *Space {
	base := uint64(a.Size())

	powers := make([]uint64, maxLen+1)
	prefix := make([]uint64, maxLen+1)

	powers[0] = 1
	for l := 0; l <= maxLen; l++ {
		if l > 0 {
			powers[l] = powers[l-1] * base
		}

		if l >= minLen {
			var prev uint64
			if l > 0 {
				prev = prefix[l-1]
			}
			prefix[l] = prev + powers[l]
		}
	}

	return &Space{
		alphabet: []rune(a),
		base:     base,
		minLen:   minLen,
		maxLen:   maxLen,
		powers:   powers,
		prefix:   prefix,
	}
}

// Total returns the number of words in the range before pattern filtering.
func (s *Space) Total() uint64 {
	return s.prefix[s.maxLen]
}

// FillWord converts an enumeration index to its word and writes it to buf.
// Returns the word length and false if index is out of range.
func (s *Space) FillWord(index uint64, buf []rune) (int, bool) {
	if index >= s.prefix[s.maxLen] {
		return 0, false
	}

	for length := s.minLen; length <= s.maxLen; length++ {
		if index >= s.prefix[length] {
			continue
		}

		if length > 0 {
			index -= s.prefix[length-1]
		}

		for i := length - 1; i >= 0; i-- {
			buf[i] = s.alphabet[index%s.base]
			index /= s.base
		}

		return length, true
	}

	return 0, false
}
