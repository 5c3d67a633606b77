package wordlist

import "fmt"

// Request is the validated configuration one run is built from.
type Request struct {
	MinLength int
	MaxLength int
	Pattern   string
}

// Normalize checks the length bounds and applies the pattern coercion rule:
// when a pattern is present and its length falls outside [MinLength, MaxLength],
// both bounds are overwritten to the pattern's length instead of failing the
// run. It reports whether that coercion happened so the caller can notify the
// user.
func (r *Request) Normalize() (coerced bool, err error) {
	if r.MinLength < 0 || r.MaxLength < 0 {
		return false, fmt.Errorf("%w: lengths must not be negative", ErrInvalidRange)
	}

	if r.MinLength > r.MaxLength {
		return false, fmt.Errorf(
			"%w: minimum length %d is greater than maximum length %d",
			ErrInvalidRange, r.MinLength, r.MaxLength,
		)
	}

	if r.Pattern == "" {
		return false, nil
	}

	patternLength := len([]rune(r.Pattern))
	if patternLength < r.MinLength || patternLength > r.MaxLength {
		r.MinLength = patternLength
		r.MaxLength = patternLength
		return true, nil
	}

	return false, nil
}
