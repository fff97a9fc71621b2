package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// NoData is shown wherever a value is absent
const NoData = "No data"

// ParseSalary parses a salary string such as "85000", "$85,000", "85k" or
// "1.2M" into a number of dollars.
func ParseSalary(salaryStr string) (float64, error) {
	s := strings.TrimSpace(salaryStr)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return 0, fmt.Errorf("empty salary")
	}

	multiplier := 1.0
	switch strings.ToUpper(s[len(s)-1:]) {
	case "K":
		multiplier = 1_000
		s = s[:len(s)-1]
	case "M":
		multiplier = 1_000_000
		s = s[:len(s)-1]
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid salary %q", salaryStr)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("invalid salary %q", salaryStr)
	}
	return val * multiplier, nil
}

// FormatSalary formats dollars with comma separators and no cents, e.g. "$75,000".
func FormatSalary(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatSalaryCents formats dollars with two decimals, e.g. "$75,000.00".
func FormatSalaryCents(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatOptionalSalary formats v when ok, or NoData otherwise.
func FormatOptionalSalary(v float64, ok bool) string {
	if !ok {
		return NoData
	}
	return FormatSalary(v)
}

// CompactSalary formats large salaries with an SI suffix, e.g. "$150k" or "$1.2M".
func CompactSalary(v float64) string {
	if v < 1000 {
		return FormatSalary(v)
	}
	val, suffix := humanize.ComputeSI(v)
	return fmt.Sprintf("$%s%s", strconv.FormatFloat(math.Round(val*10)/10, 'f', -1, 64), suffix)
}

// TruncateString shortens s to at most width terminal cells, ending in "..." when cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
