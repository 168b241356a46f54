package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhnCheckDigit(t *testing.T) {
	tests := []struct {
		prefix string
		want   byte
	}{
		{"7992739871", 3},      // classic worked example
		{"453201511283036", 6}, // Visa test number 4532015112830366
		{"0", 0},
		{"1", 8},
	}

	for _, tt := range tests {
		got := LuhnCheckDigit(tt.prefix)
		assert.Equal(t, tt.want, got, "prefix %q", tt.prefix)
		assert.True(t, ValidateLuhn(tt.prefix+string('0'+got)))
	}
}

func TestValidateLuhn(t *testing.T) {
	assert.True(t, ValidateLuhn("79927398713"))
	assert.True(t, ValidateLuhn("4532015112830366"))
	assert.False(t, ValidateLuhn("79927398710"))
	assert.False(t, ValidateLuhn(""))
	assert.False(t, ValidateLuhn("abc"))

	// Separators are ignored.
	assert.True(t, ValidateLuhn("4532 0151 1283 0366"))
}

func TestIBANCheckDigits(t *testing.T) {
	// GB82 WEST 1234 5698 7654 32: known-good check digits for the
	// BBAN "WEST12345698765432" under country GB.
	assert.Equal(t, "82", IBANCheckDigits("GB", "WEST12345698765432"))

	// DE89 3704 0044 0532 0130 00
	assert.Equal(t, "89", IBANCheckDigits("DE", "370400440532013000"))
}

func TestIBANCheckDigitsLetterBBAN(t *testing.T) {
	// Letters in the BBAN reduce as two-digit numbers (A=10 .. Z=35),
	// the same mapping ValidateIBAN applies.
	assert.Equal(t, "91", IBANCheckDigits("NL", "ABNA0417164300"))
	assert.True(t, ValidateIBAN("NL91ABNA0417164300"))

	// Case does not change the reduction.
	assert.Equal(t, "82", IBANCheckDigits("GB", "west12345698765432"))
}

func TestValidateIBAN(t *testing.T) {
	assert.True(t, ValidateIBAN("GB82WEST12345698765432"))
	assert.True(t, ValidateIBAN("DE89370400440532013000"))
	assert.True(t, ValidateIBAN("gb82 west 1234 5698 7654 32"))

	assert.False(t, ValidateIBAN("GB82WEST12345698765433"))
	assert.False(t, ValidateIBAN("GB82"))
	assert.False(t, ValidateIBAN(""))
	assert.False(t, ValidateIBAN("GB82WEST1234569876543_"))
}

func TestCheckDigitsRoundTrip(t *testing.T) {
	// Any BBAN with the computed check digits must validate.
	bbans := []struct{ country, bban string }{
		{"DE", "123456789012345678"},
		{"FR", "12345678901234567890123"},
		{"NL", "ABNA0417164300"},
	}
	for _, tt := range bbans {
		check := IBANCheckDigits(tt.country, tt.bban)
		assert.True(t, ValidateIBAN(tt.country+check+tt.bban),
			"%s%s%s did not validate", tt.country, check, tt.bban)
	}
}
