package wordlist

import "errors"

var ErrInvalidRange = errors.New("invalid length range")
var ErrInvalidAlphabet = errors.New("invalid alphabet")
