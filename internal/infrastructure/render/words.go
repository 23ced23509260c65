package render

import (
	"strconv"
	"strings"
)

// English number words for amounts spelled out on documents.
var (
	onesWords = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	tensWords = []string{
		"", "", "twenty", "thirty", "forty", "fifty",
		"sixty", "seventy", "eighty", "ninety",
	}
	scaleWords = []string{"", " thousand", " million", " billion", " trillion"}
)

// maxSpellable is the largest amount the scale table can name. Anything
// past the trillions is rendered as digits.
const maxSpellable = 1_000_000_000_000_000 - 1

// AmountInWords spells a non-negative whole amount out in English, e.g.
// 1250 -> "one thousand two hundred and fifty". Callers floor fractional
// amounts before conversion.
func AmountInWords(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n > maxSpellable {
		return strconv.FormatInt(n, 10)
	}

	// Split into base-1000 groups, least significant first.
	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		parts = append(parts, hundredsInWords(groups[i])+scaleWords[i])
	}
	return strings.Join(parts, " ")
}

// hundredsInWords converts 1..999 to words.
func hundredsInWords(n int64) string {
	if n < 100 {
		return tensInWords(n)
	}
	s := onesWords[n/100] + " hundred"
	if rem := n % 100; rem != 0 {
		s += " and " + tensInWords(rem)
	}
	return s
}

// tensInWords converts 1..99 to words.
func tensInWords(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	s := tensWords[n/10]
	if rem := n % 10; rem != 0 {
		s += "-" + onesWords[rem]
	}
	return s
}
