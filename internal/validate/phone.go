package validate

import (
	"errors"
	"regexp"
	"strings"
)

var phoneStripReg = regexp.MustCompile(`\s|\+|[^\d]`)

var ErrInvalidPhone = errors.New("phone number contains non-numeric characters")

// AddCountryIndicator normalizes a phone number to its international
// form: leading 00 removed, spaces and symbols stripped, and the 244
// Angola prefix added to 9-digit local numbers.
func AddCountryIndicator(numero string) (string, error) {
	numero = strings.TrimPrefix(numero, "00")
	numero = phoneStripReg.ReplaceAllString(numero, "")

	if !NumericOK(numero) {
		return "", ErrInvalidPhone
	}

	if len(numero) > 9 {
		return numero, nil
	}
	return "244" + numero, nil
}
