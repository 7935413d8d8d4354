package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNGN(t *testing.T) {
	got := NGN(5000)
	// The exact symbol placement is locale data; the grouped amount is ours.
	assert.Contains(t, got, "5,000")
	assert.Contains(t, got, "NGN")
}

func TestUSD(t *testing.T) {
	got := USD(1234.5)
	assert.Contains(t, got, "1,234.50")
	assert.Contains(t, got, "$")
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{0.5, "0.50"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in))
	}
}
