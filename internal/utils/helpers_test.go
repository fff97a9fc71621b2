package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	tests := map[string]float64{
		"85000":    85000,
		"$85,000":  85000,
		" 85_000 ": 85000,
		"85k":      85000,
		"85K":      85000,
		"1.2M":     1200000,
		"$150.5k":  150500,
		"0":        0,
	}
	for in, want := range tests {
		got, err := ParseSalary(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "$", "abc", "12x", "NaN", "Inf"} {
		_, err := ParseSalary(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "$75,000", FormatSalary(75000))
	assert.Equal(t, "$87,501", FormatSalary(87500.6))
	assert.Equal(t, "$0", FormatSalary(0))
	assert.Equal(t, "$87,500.00", FormatSalaryCents(87500))
	assert.Equal(t, "$43,000.50", FormatSalaryCents(43000.5))
	assert.Equal(t, NoData, FormatOptionalSalary(10, false))
	assert.Equal(t, "$10", FormatOptionalSalary(10, true))
}

func TestCompactSalary(t *testing.T) {
	assert.Equal(t, "$150k", CompactSalary(150000))
	assert.Equal(t, "$87.5k", CompactSalary(87500))
	assert.Equal(t, "$1.2M", CompactSalary(1200000))
	assert.Equal(t, "$999", CompactSalary(999))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Data Scientist", TruncateString("Data Scientist", 20))
	assert.Equal(t, "Machi...", TruncateString("Machine Learning Engineer", 8))
	assert.Equal(t, "unchanged", TruncateString("unchanged", 0))
}
