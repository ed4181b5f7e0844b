package iso4217

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKnownCodes(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "CHF", "ZWG"} {
		assert.NoError(t, Validate(code), code)
	}
}

func TestValidateIgnoresCase(t *testing.T) {
	assert.NoError(t, Validate("usd"))
	assert.NoError(t, Validate("Eur"))
}

func TestValidateNonAlphabetic(t *testing.T) {
	for _, code := range []string{"US1", "U$D", "12 ", "E-R"} {
		assert.ErrorIs(t, Validate(code), ErrNotAlphabetic, code)
	}
}

func TestValidateUnknownCodes(t *testing.T) {
	// XXX and XTS are the ISO "no currency" and testing codes; a
	// payment cannot be denominated in them.
	for _, code := range []string{"ZZZ", "XXX", "XTS", "ABCD", "US", ""} {
		assert.ErrorIs(t, Validate(code), ErrUnknownCode, code)
	}
}

func TestLookupCanonicalizes(t *testing.T) {
	cur, ok := Lookup("usd")
	require.True(t, ok)
	assert.Equal(t, "USD", cur.Code)
	assert.Equal(t, "US Dollar", cur.Name)

	_, ok = Lookup("XXX")
	assert.False(t, ok)
}
