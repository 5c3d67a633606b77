package alphabet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/pkg/set"
)

// Alphabet is an ordered sequence of distinct characters words are built from.
// Its order fixes the enumeration order of the generator.
type Alphabet []rune

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
)

var presets = map[string]string{
	"numeric":        digits,
	"alpha":          lowercase,
	"alpha-upper":    uppercase,
	"alpha-mixed":    lowercase + uppercase,
	"alphanum":       lowercase + digits,
	"alphanum-upper": uppercase + digits,
	"alphanum-mixed": lowercase + uppercase + digits,
}

// Preset returns one of the predefined character sets by name.
func Preset(name string) (Alphabet, error) {
	chars, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown charset %q", wordlist.ErrInvalidAlphabet, name)
	}

	return Alphabet(chars), nil
}

// Resolve builds an alphabet from a custom character string. Duplicates are
// removed and the result is sorted by code point, so enumeration order follows
// the normalized set, not the order characters were typed in.
func Resolve(source string) (Alphabet, error) {
	seen := set.New[rune]()
	for _, r := range strings.TrimSpace(source) {
		seen.Add(r)
	}

	if seen.Size() == 0 {
		return nil, fmt.Errorf("%w: empty character set", wordlist.ErrInvalidAlphabet)
	}

	chars := seen.Slice()
	slices.Sort(chars)

	return Alphabet(chars), nil
}

func (a Alphabet) Size() int {
	return len(a)
}

func (a Alphabet) String() string {
	return string(a)
}
