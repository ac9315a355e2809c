// Package field provides the fixed-width formatting primitives shared by
// every record encoder: padding, truncation, digit extraction and accent
// stripping. The interchange layout only accepts plain ASCII uppercase,
// so text goes through Normalize before it reaches a record.
package field

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Align selects which side of a field receives the fill characters.
type Align int

const (
	// AlignLeft pads on the right (text fields).
	AlignLeft Align = iota
	// AlignRight pads on the left (numeric fields).
	AlignRight
)

// Pad fits s into exactly width characters: overlong input is truncated,
// short input is padded with fill on the side opposite the alignment.
// It never fails; width <= 0 yields "".
func Pad(s string, width int, fill byte, align Align) string {
	if width <= 0 {
		return ""
	}
	if len(s) >= width {
		return s[:width]
	}
	padding := strings.Repeat(string(fill), width-len(s))
	if align == AlignLeft {
		return s + padding
	}
	return padding + s
}

// Text formats a left-justified, space-filled field.
func Text(s string, width int) string {
	return Pad(s, width, ' ', AlignLeft)
}

// Numeric formats a right-justified, zero-filled field from the digits of
// s. Non-digit characters are dropped first, so "1234-5" and "12345"
// render identically.
func Numeric(s string, width int) string {
	return Pad(Digits(s), width, '0', AlignRight)
}

// ZeroPad right-justifies s with leading zeros without touching its
// characters. Use Numeric when the input may carry separators.
func ZeroPad(s string, width int) string {
	return Pad(s, width, '0', AlignRight)
}

// Digits returns only the decimal digits of s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents decomposes s and removes combining marks, turning
// "JOÃO JOSÉ" into "JOAO JOSE".
func StripAccents(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize prepares free text for a record: accents stripped, uppercased.
func Normalize(s string) string {
	return strings.ToUpper(StripAccents(s))
}
