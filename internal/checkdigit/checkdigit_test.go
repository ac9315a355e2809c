package checkdigit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"1234", "3"},   // 1·6+2·7+3·8+4·9 = 80, 80 mod 11 = 3
		{"123456", "0"}, // 154 mod 11 = 0
		{"68", "X"},     // 6·8+8·9 = 120, 120 mod 11 = 10
		{"", ""},
		{"12a4", ""},
		{"12-34", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compute(tt.digits), "Compute(%q)", tt.digits)
	}
}

func TestComputeDeterministic(t *testing.T) {
	first := Compute("987654321")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Compute("987654321"))
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in        string
		trail     bool
		wantBase  string
		wantDigit string
	}{
		{"1234-3", false, "1234", "3"},
		{"1234-3", true, "1234", "3"},
		{"12343", true, "1234", "3"},
		{"12343", false, "12343", ""},
		{"1234-x", false, "1234", "X"},
		{"0068-X", true, "0068", "X"},
		{" 123456-0 ", false, "123456", "0"},
		{"7", true, "7", ""},
	}
	for _, tt := range tests {
		base, digit := Split(tt.in, tt.trail)
		assert.Equal(t, tt.wantBase, base, "Split(%q, %v) base", tt.in, tt.trail)
		assert.Equal(t, tt.wantDigit, digit, "Split(%q, %v) digit", tt.in, tt.trail)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("1234", "3"))
	assert.True(t, Matches("68", "x"))
	assert.False(t, Matches("1234", "4"))
	assert.False(t, Matches("", "0"))
}
