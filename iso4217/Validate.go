package iso4217

import (
	"errors"
	"unicode"
)

var (
	ErrNotAlphabetic = errors.New("must be alphabetic")
	ErrUnknownCode   = errors.New("must be a valid ISO currency code")
)

// Validate checks that code is a purely alphabetic string resolving to
// a known ISO 4217 currency. The lookup ignores case; callers keep the
// code exactly as it was given.
func Validate(code string) error {
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return ErrNotAlphabetic
		}
	}
	if _, ok := Lookup(code); !ok {
		return ErrUnknownCode
	}
	return nil
}
