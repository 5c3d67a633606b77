package pattern

// Placeholder characters. Any other pattern character is a literal.
const (
	Lowercase = '@'
	Digit     = ','
	Uppercase = '%'
	Any       = '^'
)

// Pattern constrains each position of a candidate word independently. A
// literal that never occurs in the generation alphabet simply matches nothing
// for that length; that is expected behavior, not a configuration error.
type Pattern []rune

func New(s string) Pattern {
	return Pattern(s)
}

func (p Pattern) Length() int {
	return len(p)
}

// Matches reports whether word satisfies every positional rule, left to
// right, stopping at the first mismatch. The word must have the same length
// as the pattern; the generator only calls it that way.
func (p Pattern) Matches(word []rune) bool {
	for i, c := range p {
		switch c {
		case Lowercase:
			if word[i] < 'a' || word[i] > 'z' {
				return false
			}
		case Digit:
			if word[i] < '0' || word[i] > '9' {
				return false
			}
		case Uppercase:
			if word[i] < 'A' || word[i] > 'Z' {
				return false
			}
		case Any:
		default:
			if word[i] != c {
				return false
			}
		}
	}

	return true
}
