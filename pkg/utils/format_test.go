package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "valor com uma casa decimal", value: 12.5, expected: "12.50%"},
		{name: "zero", value: 0, expected: "0.00%"},
		{name: "arredondamento para cima", value: 33.456, expected: "33.46%"},
		{name: "valor inteiro", value: 100, expected: "100.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercentage(tt.value))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "valor com uma casa decimal", value: 3.1, expected: "3.10"},
		{name: "zero", value: 0, expected: "0.00"},
		{name: "truncamento de casas extras", value: 1.999, expected: "2.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestParseMetaNumber(t *testing.T) {
	assert.Equal(t, 1234.0, ParseMetaNumber("1234"))
	assert.Equal(t, 3.14, ParseMetaNumber("3.14"))
	assert.Equal(t, 0.0, ParseMetaNumber(""))
	assert.Equal(t, 0.0, ParseMetaNumber("abc"))
}
