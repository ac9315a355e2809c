package taxid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid", "52998224725", true},
		{"valid with separators", "529.982.247-25", true},
		{"last digit mutated", "52998224726", false},
		{"first check digit mutated", "52998224735", false},
		{"all identical digits", "11111111111", false},
		{"too short", "5299822472", false},
		{"too long stays cpf path", "529982247250", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"valid", "11444777000161", true},
		{"valid with separators", "11.444.777/0001-61", true},
		{"second sample", "12345678000195", true},
		{"last digit mutated", "11444777000162", false},
		{"all identical digits", "22222222222222", false},
		{"wrong length", "1144477700016", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCNPJ(tt.cnpj))
		})
	}
}

func TestIsValidDispatch(t *testing.T) {
	// 11 digits or fewer takes the individual path, more the company path.
	assert.True(t, IsValid("529.982.247-25"))
	assert.True(t, IsValid("11444777000161"))
	assert.False(t, IsValid("11444777000162"))
}

func TestRegistrationType(t *testing.T) {
	assert.Equal(t, TypeIndividual, RegistrationType("52998224725"))
	assert.Equal(t, TypeCompany, RegistrationType("11444777000161"))
}
