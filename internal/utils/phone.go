package utils

import (
	"fmt"

	"github.com/ttacon/libphonenumber"
)

// ValidatePhoneNumber checks that the given contact number parses as a
// phone number for the configured default region. The number is validated
// only; it is stored and matched verbatim, so formatting variants of the
// same number remain distinct customer keys.
func ValidatePhoneNumber(phoneNumber, defaultRegion string) error {
	p, err := libphonenumber.Parse(phoneNumber, defaultRegion)
	if err != nil {
		return fmt.Errorf("could not parse phone number %q: %w", phoneNumber, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return fmt.Errorf("phone number %q is not valid", phoneNumber)
	}
	return nil
}
