package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{13, "thirteen"},
		{19, "nineteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{45, "forty-five"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{101, "one hundred and one"},
		{115, "one hundred and fifteen"},
		{342, "three hundred and forty-two"},
		{1000, "one thousand"},
		{1250, "one thousand two hundred and fifty"},
		{20000, "twenty thousand"},
		{100000, "one hundred thousand"},
		{999999, "nine hundred and ninety-nine thousand nine hundred and ninety-nine"},
		{1000000, "one million"},
		{1000001, "one million one"},
		{2500000, "two million five hundred thousand"},
		{1000000000, "one billion"},
		{1000000000000, "one trillion"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(tt.n))
		})
	}
}

func TestAmountInWordsSkipsZeroGroups(t *testing.T) {
	// The empty thousands group must not leak a stray scale word.
	assert.Equal(t, "one million forty-two", AmountInWords(1000042))
}

func TestAmountInWordsBeyondTrillions(t *testing.T) {
	// Stored totals are untrusted data; past the largest named scale the
	// amount comes back as digits instead of panicking.
	assert.Equal(t,
		"nine hundred and ninety-nine trillion",
		AmountInWords(999_000_000_000_000))
	assert.Equal(t, "1000000000000000", AmountInWords(1_000_000_000_000_000))
	assert.Equal(t, "9223372036854775807", AmountInWords(9223372036854775807))
}
