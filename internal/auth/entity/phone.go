package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// rePhone matches Azerbaijani MSISDNs: country code 994 followed by nine digits.
var rePhone = regexp.MustCompile(`^994\d{9}$`)

// NormalizePhone strips formatting characters from a raw phone number so that
// "+994 50-123-45-67" and "994501234567" compare equal.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return strings.TrimPrefix(phone, "+")
}

// ValidatePhone reports whether phone is a normalized Azerbaijani MSISDN.
func ValidatePhone(phone string) error {
	if !rePhone.MatchString(phone) {
		return fmt.Errorf("Invalid phone number: %s. It must be in the format 994XXXXXXXXX.", phone)
	}
	return nil
}
