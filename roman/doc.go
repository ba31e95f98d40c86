// Package roman implements a strict, bidirectional Roman-numeral codec for
// the integers 1 through 3999.
//
// What:
//
//   - IsValid: reports whether a string is a canonical numeral, i.e. it fully
//     matches M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3}) and is
//     not empty. Matching is case-sensitive and tolerates no whitespace.
//   - Parse: decodes a canonical numeral to its integer value.
//   - Format: encodes an integer in [MinValue, MaxValue] by greedy subtraction.
//   - Numeral: an int newtype that marshals to and from its canonical text.
//
// Guarantees:
//
//   - Format(n) always satisfies IsValid and Parse(Format(n)) == n.
//   - Every string accepted by IsValid parses to a value in [1, 3999], and
//     formatting that value reproduces the string byte for byte.
//
// Complexity:
//
//   - IsValid, Parse: O(len(s))
//   - Format:         O(1) (the longest numeral, MMMDCCCLXXXVIII, has 15 symbols)
//
// Errors:
//
//   - ErrFormat  the input is not a canonical numeral
//   - ErrRange   the integer is outside [1, 3999]
//
// Functions:
//
//   - IsValid(s string) bool
//   - Parse(s string) (int, error)
//   - Format(n int) (string, error)
//   - MustFormat(n int) string
package roman
