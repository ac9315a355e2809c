// Package checkdigit implements the modulus-11 verification digit used by
// the bank for agency and account numbers. The receiving bank recomputes
// the digit with this exact weight cycle, so the arithmetic here must not
// be replaced with a generic mod-11 variant.
package checkdigit

import "strings"

const weightCycle = "23456789"

// Compute returns the verification character for a numeric string: the
// weight cycle is tiled and anchored at the least-significant digit, each
// digit is multiplied by its aligned weight, and the sum is reduced mod
// 11. A remainder of 10 yields "X". Empty or non-numeric input yields "".
func Compute(digits string) string {
	if digits == "" {
		return ""
	}

	reps := len(digits)/len(weightCycle) + 1
	tiled := strings.Repeat(weightCycle, reps)
	weights := tiled[len(tiled)-len(digits):]

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return ""
		}
		sum += int(d-'0') * int(weights[i]-'0')
	}

	rem := sum % 11
	if rem == 10 {
		return "X"
	}
	return string(rune('0' + rem))
}

// Split separates a number from its verification digit. It accepts the
// "1234-5" form, a bare base ("1234", no digit supplied) and, when the
// input has no separator but trailIsDigit is set, the "12345" form where
// the last character is the digit.
func Split(s string, trailIsDigit bool) (base, digit string) {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		return keepDigits(s[:i]), strings.ToUpper(strings.TrimSpace(s[i+1:]))
	}
	s = keepDigitsOrX(s)
	if trailIsDigit && len(s) > 1 {
		return s[:len(s)-1], s[len(s)-1:]
	}
	return s, ""
}

// Matches reports whether digit is the verification character of base.
func Matches(base, digit string) bool {
	want := Compute(keepDigits(base))
	return want != "" && want == strings.ToUpper(digit)
}

func keepDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func keepDigitsOrX(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c == 'X' || c == 'x' {
			b.WriteByte(c)
		}
	}
	return strings.ToUpper(b.String())
}
