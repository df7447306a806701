package utils

import (
	"regexp"
)

var barcodeRe = regexp.MustCompile(`^\d{8,14}$`)

// ValidateBarcode reports whether s is an 8-14 digit numeric barcode
// (EAN-8 through ITF-14).
func ValidateBarcode(s string) bool {
	return barcodeRe.MatchString(s)
}

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}
