package validate

import "strings"

// MaxPlateNumberLength applies to every vehicle type.
const MaxPlateNumberLength = 9

// SanitizePlateNumber uppercases raw, drops everything except A-Z, 0-9 and
// spaces, and cuts the result to maxLength characters.
func SanitizePlateNumber(raw string, maxLength int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	res := b.String()
	if maxLength >= 0 && len(res) > maxLength {
		res = res[:maxLength]
	}
	return res
}

// NormalizePlateNumber is the plate as it is stored: sanitized without a
// length cut and trimmed. PlateNumber checks the length of this value.
func NormalizePlateNumber(raw string) string {
	return strings.TrimSpace(SanitizePlateNumber(raw, -1))
}
