package filter

import (
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

// Apply returns the records that satisfy every active constraint in state, in
// input order. The input slice is never modified; the result is always a new
// slice, even when state is the identity filter.
func Apply(records []models.Record, state State) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, state) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes state.
func Matches(r models.Record, state State) bool {
	if state.JobTitle != nil && r.JobTitle != *state.JobTitle {
		return false
	}
	// Empty sets match everything; the emptiness check must come first.
	if !state.CompanySizes.Empty() && !state.CompanySizes.Has(r.CompanySize) {
		return false
	}
	if !state.ExperienceLevels.Empty() && !state.ExperienceLevels.Has(r.ExperienceLevel) {
		return false
	}
	if !state.EmploymentTypes.Empty() && !state.EmploymentTypes.Has(r.EmploymentType) {
		return false
	}
	if state.MinSalary != nil && r.SalaryUSD < *state.MinSalary {
		return false
	}
	if state.MaxSalary != nil && r.SalaryUSD > *state.MaxSalary {
		return false
	}
	if state.CountryCode != nil && r.CompanyLocation != *state.CountryCode {
		return false
	}
	return true
}
