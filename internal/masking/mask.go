// Package masking redacts phone numbers for public display.
package masking

import "strings"

const (
	redaction     = "*"
	visiblePrefix = 3
	visibleSuffix = 2
)

// Mask keeps the first three and last two characters of a phone number and
// replaces everything between with the redaction character. Inputs of four
// characters or fewer are returned unchanged. Mask accepts any string and
// never fails.
func Mask(phone string) string {
	runes := []rune(phone)
	if len(runes) <= visiblePrefix+1 {
		return phone
	}
	hidden := len(runes) - visiblePrefix - visibleSuffix
	if hidden < 0 {
		hidden = 0
	}
	return string(runes[:visiblePrefix]) +
		strings.Repeat(redaction, hidden) +
		string(runes[len(runes)-visibleSuffix:])
}
