package roman

import "strconv"

// Numeral is an integer that reads and writes itself as a canonical
// Roman numeral. The zero value is not a valid Numeral.
//
// Numeral implements encoding.TextMarshaler and encoding.TextUnmarshaler,
// so it can be embedded in JSON or YAML documents as "MCMXCIV" rather than 1994.
type Numeral int

// Valid reports whether n lies in [MinValue, MaxValue].
func (n Numeral) Valid() bool {
	return n >= MinValue && n <= MaxValue
}

// String returns the canonical numeral, or "Numeral(<n>)" when n is out of range.
func (n Numeral) String() string {
	s, err := Format(int(n))
	if err != nil {
		return "Numeral(" + strconv.Itoa(int(n)) + ")"
	}

	return s
}

// MarshalText encodes n as its canonical numeral. Returns ErrRange if n is invalid.
func (n Numeral) MarshalText() ([]byte, error) {
	s, err := Format(int(n))
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// UnmarshalText decodes a canonical numeral into n. Returns ErrFormat on
// invalid input and leaves n unchanged.
func (n *Numeral) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = Numeral(v)

	return nil
}
