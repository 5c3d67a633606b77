package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		word    string
		want    bool
	}{
		{"lowercase placeholder accepts letter", "@", "a", true},
		{"lowercase placeholder rejects digit", "@", "7", false},
		{"lowercase placeholder rejects uppercase", "@", "A", false},
		{"digit placeholder accepts digit", ",", "0", true},
		{"digit placeholder rejects letter", ",", "a", false},
		{"uppercase placeholder accepts letter", "%", "Z", true},
		{"uppercase placeholder rejects lowercase", "%", "z", false},
		{"wildcard accepts anything", "^", "#", true},
		{"literal matches itself", "x", "x", true},
		{"literal rejects other characters", "x", "y", false},
		{"mixed classes", "@,", "a0", true},
		{"mixed classes reject double letter", "@,", "aa", false},
		{"mixed classes reject double digit", "@,", "00", false},
		{"literal prefix with wildcard", "a^", "ab", true},
		{"literal prefix mismatch", "a^", "ba", false},
		{"prefix literal with digit suffix", "Pass,,,,", "Pass1234", true},
		{"prefix literal wrong digits", "Pass,,,,", "Passabcd", false},
		{"first mismatch short-circuits", "@@@@", "1bcd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.pattern)
			assert.Equal(t, tt.want, p.Matches([]rune(tt.word)))
		})
	}
}

func TestPattern_Length(t *testing.T) {
	assert.Equal(t, 0, New("").Length())
	assert.Equal(t, 4, New("@,%^").Length())
}
