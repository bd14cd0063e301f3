package strfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynamicPrecision_Default(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0.0"},
		{input: 2.5, expected: "2.5"},
		{input: 0.1, expected: "0.1"},
		{input: 10, expected: "10.0"},
		{input: 123.456, expected: "123.456"},
		{input: 1234567, expected: "1234567.0"},
		{input: 0.0001, expected: "0.0001"},
		{input: 0.000123, expected: "1.23e-04"},
		{input: 1e-05, expected: "1e-05"},
		{input: 1e-09, expected: "0.0"},
		{input: 1e20, expected: "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, defaultDynamic.format(tt.input))
		})
	}
}

func TestDynamicPrecision_General(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 3, expected: "3"},
		{input: 2.5, expected: "2.5"},
		{input: 3.14159265, expected: "3.14159"},
		{input: 123456, expected: "123456"},
		{input: 1000000, expected: "1e+06"},
		{input: 1234567, expected: "1.23457e+06"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, generalDynamic.format(tt.input))
		})
	}
}
