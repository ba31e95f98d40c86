package roman

import "errors"

const (
	// MinValue is the smallest integer with a canonical numeral.
	MinValue = 1

	// MaxValue is the largest integer with a canonical numeral.
	MaxValue = 3999
)

var (
	// ErrFormat is returned by Parse when the input is not a canonical numeral.
	ErrFormat = errors.New("roman: invalid numeral")

	// ErrRange is returned by Format when the value is outside [MinValue, MaxValue].
	ErrRange = errors.New("roman: value out of range [1, 3999]")
)

// symbol pairs a numeral token with its value.
type symbol struct {
	token string
	value int
}

// symbols is the single table shared by Parse and Format.
// Entries are strictly descending by value; two-character subtractive
// tokens precede the single characters they start with.
var symbols = [...]symbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}
