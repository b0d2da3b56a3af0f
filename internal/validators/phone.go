package validators

import "regexp"

var phoneRe = regexp.MustCompile(`^\d{11}$`)

// IsPhoneNumberValid accepts exactly 11 digits. Empty means "not set"
// and is valid.
func IsPhoneNumberValid(phone string) bool {
	if phone == "" {
		return true
	}
	return phoneRe.MatchString(phone)
}
