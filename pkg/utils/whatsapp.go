package utils

import (
	"net/url"
	"strings"
)

// BuildWhatsAppLink builds a wa.me deep link with a prefilled message.
// wa.me only accepts the digits of the phone number.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}
