// Package checksum implements the check-digit algorithms backing the
// checksum-bearing field types: Luhn (credit card numbers) and ISO 7064
// mod-97-10 (IBAN). All functions are pure and consume no randomness.
package checksum

// LuhnCheckDigit computes the digit that, appended to prefix, makes the
// resulting number Luhn-valid. Non-digit characters in prefix are ignored.
func LuhnCheckDigit(prefix string) byte {
	var sum uint32
	// Because the appended check digit occupies the undoubled rightmost
	// position, the rightmost digit of the prefix is doubled.
	double := true

	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < '0' || c > '9' {
			continue
		}
		d := uint32(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return byte((10 - sum%10) % 10)
}

// ValidateLuhn reports whether the digit string (ignoring non-digits)
// passes the Luhn check.
func ValidateLuhn(number string) bool {
	var sum uint32
	double := false
	seen := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			continue
		}
		seen = true
		d := uint32(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return seen && sum%10 == 0
}

// IBANCheckDigits computes the two ISO 7064 mod-97-10 check digits for the
// given country code and BBAN. The rearranged numeral is BBAN + country
// letters mapped to two-digit numbers (A=10 .. Z=35) + "00"; the check is
// 98 minus its remainder modulo 97, zero-padded to width 2.
func IBANCheckDigits(countryCode, bban string) string {
	rem := mod97(bban)
	for i := 0; i < len(countryCode); i++ {
		rem = appendNumber(rem, uint64(countryCode[i]-'A')+10)
	}
	rem = (rem * 100) % 97 // the "00" placeholder
	check := 98 - rem

	return string([]byte{'0' + byte(check/10), '0' + byte(check%10)})
}

// ValidateIBAN reports whether the IBAN (spaces allowed) reduces to 1 under
// the mod-97 check. The first four characters are moved to the end and
// letters are mapped to two-digit numbers before reduction.
func ValidateIBAN(iban string) bool {
	clean := make([]byte, 0, len(iban))
	for i := 0; i < len(iban); i++ {
		c := iban[i]
		switch {
		case c >= 'a' && c <= 'z':
			clean = append(clean, c-('a'-'A'))
		case c == ' ' || c == '\t':
			// skip
		default:
			clean = append(clean, c)
		}
	}
	if len(clean) < 5 {
		return false
	}

	rearranged := append(clean[4:], clean[:4]...)
	var rem uint64
	for _, c := range rearranged {
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + uint64(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			rem = appendNumber(rem, uint64(c-'A')+10)
		default:
			return false
		}
	}
	return rem == 1
}

// mod97 reduces a BBAN modulo 97. Letters map to two-digit numbers
// (A=10 .. Z=35); spaces are ignored.
func mod97(bban string) uint64 {
	var rem uint64
	for i := 0; i < len(bban); i++ {
		c := bban[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + uint64(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			rem = appendNumber(rem, uint64(c-'A')+10)
		case c >= 'a' && c <= 'z':
			rem = appendNumber(rem, uint64(c-'a')+10)
		}
	}
	return rem
}

// appendNumber extends the running remainder with the decimal digits of n
// (n is at most two digits here).
func appendNumber(rem, n uint64) uint64 {
	if n >= 10 {
		rem = (rem*10 + n/10) % 97
	}
	return (rem*10 + n%10) % 97
}
