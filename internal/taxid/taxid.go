// Package taxid validates Brazilian taxpayer registration numbers: CPF
// for individuals (11 digits) and CNPJ for companies (14 digits). Both
// carry two built-in verification digits computed by weighted sums; the
// weight tables are fixed by the registry and are not related to the
// bank's agency/account modulus-11 scheme.
package taxid

import "github.com/remessa-dev/remessa/internal/field"

// Registration type codes used by the interchange layout.
const (
	TypeIndividual = "1"
	TypeCompany    = "2"
)

var (
	cpfWeights1 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2 = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValid dispatches on digit count: 11 or fewer digits take the
// individual (CPF) path, anything longer the company (CNPJ) path.
func IsValid(s string) bool {
	if len(field.Digits(s)) <= 11 {
		return IsValidCPF(s)
	}
	return IsValidCNPJ(s)
}

// IsValidCPF reports whether s is a valid individual registration number.
func IsValidCPF(s string) bool {
	digits := field.Digits(s)
	if len(digits) != 11 || allSame(digits) {
		return false
	}
	if cpfDigit(digits[:9], cpfWeights1) != int(digits[9]-'0') {
		return false
	}
	return cpfDigit(digits[:10], cpfWeights2) == int(digits[10]-'0')
}

// IsValidCNPJ reports whether s is a valid company registration number.
func IsValidCNPJ(s string) bool {
	digits := field.Digits(s)
	if len(digits) != 14 || allSame(digits) {
		return false
	}
	if cnpjDigit(digits[:12], cnpjWeights1) != int(digits[12]-'0') {
		return false
	}
	return cnpjDigit(digits[:13], cnpjWeights2) == int(digits[13]-'0')
}

// RegistrationType returns the layout's type code for a registration
// number, selected by digit count like IsValid.
func RegistrationType(s string) string {
	if len(field.Digits(s)) <= 11 {
		return TypeIndividual
	}
	return TypeCompany
}

func cpfDigit(window string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(window[i]-'0') * w
	}
	rem := sum * 10 % 11
	if rem == 10 {
		return 0
	}
	return rem
}

func cnpjDigit(window string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(window[i]-'0') * w
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
