package roman

import (
	"fmt"
	"regexp"
	"strings"
)

// canonical is the full-match grammar of a canonical numeral.
// It also matches the empty string, which IsValid rejects separately.
var canonical = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// IsValid reports whether s is a canonical Roman numeral.
//
// Empty and whitespace-only strings, lowercase or mixed-case input,
// characters outside IVXLCDM and non-canonical orderings such as "IIII",
// "VX" or "IVIV" all report false.
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	return canonical.MatchString(s)
}

// Parse decodes the canonical numeral s into its integer value.
//
// The numeral is consumed left to right: at each position the symbol table
// is scanned from the current entry downwards and the first token that
// prefixes the remainder is taken, so subtractive pairs win over the single
// characters they begin with.
//
// Returns ErrFormat (wrapped with the input) if IsValid(s) is false.
func Parse(s string) (int, error) {
	if !IsValid(s) {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	var (
		total int
		rest  = s
		i     int
	)
	for rest != "" && i < len(symbols) {
		if strings.HasPrefix(rest, symbols[i].token) {
			total += symbols[i].value
			rest = rest[len(symbols[i].token):]

			continue
		}
		i++
	}

	return total, nil
}

// Format encodes n as a canonical numeral using greedy subtraction:
// the largest table entry not exceeding the remainder is emitted and
// subtracted until nothing is left.
//
// Returns ErrRange if n < MinValue or n > MaxValue.
func Format(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", fmt.Errorf("%w: got %d", ErrRange, n)
	}

	var b strings.Builder
	b.Grow(15)
	remaining := n
	for _, sym := range symbols {
		for remaining >= sym.value {
			b.WriteString(sym.token)
			remaining -= sym.value
		}
		if remaining == 0 {
			break
		}
	}

	return b.String(), nil
}

// MustFormat is like Format but panics if n is out of range.
// It is intended for constants and tests.
func MustFormat(n int) string {
	s, err := Format(n)
	if err != nil {
		panic(err)
	}

	return s
}
