package generator

import (
	"iter"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/alphabet"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/pattern"
)

// Generator enumerates every word over the alphabet for each length in
// [minLength, maxLength], optionally filtered through a positional pattern.
type Generator struct {
	alphabet  alphabet.Alphabet
	minLength int
	maxLength int
	pattern   pattern.Pattern
}

func New(a alphabet.Alphabet, minLength, maxLength int, p pattern.Pattern) *Generator {
	return &Generator{
		alphabet:  a,
		minLength: minLength,
		maxLength: maxLength,
		pattern:   p,
	}
}

// Words returns a lazy sequence of accepted words, shortest length first.
// Within a length, enumeration is odometer order: digit indexes into the
// alphabet with the last position varying fastest. One candidate buffer is
// reused for the whole run, so memory stays constant no matter how large the
// space is. Every call restarts from the first word.
func (g *Generator) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		if g == nil || len(g.alphabet) == 0 {
			return
		}

		alphabetSize := len(g.alphabet)
		hasPattern := g.pattern.Length() > 0

		for wordLength := g.minLength; wordLength <= g.maxLength; wordLength++ {
			if hasPattern && g.pattern.Length() != wordLength {
				continue
			}

			if wordLength == 0 {
				if !yield("") {
					return
				}
				continue
			}

			letterIndexes := make([]int, wordLength)

			word := make([]rune, wordLength)

			for {
				for i, letterIndex := range letterIndexes {
					word[i] = g.alphabet[letterIndex]
				}

				if !hasPattern || g.pattern.Matches(word) {
					if !yield(string(word)) {
						return
					}
				}

				position := wordLength - 1

				for position >= 0 {
					letterIndexes[position]++

					if letterIndexes[position] < alphabetSize {
						break
					}

					letterIndexes[position] = 0
					position--
				}

				if position < 0 {
					break
				}
			}
		}
	}
}
