package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

var testRecords = []models.Record{
	{WorkYear: 2021, ExperienceLevel: models.Senior, EmploymentType: models.FullTime, JobTitle: "Data Scientist", SalaryUSD: 100000, CompanyLocation: "US", CompanySize: models.Large},
	{WorkYear: 2022, ExperienceLevel: models.Mid, EmploymentType: models.FullTime, JobTitle: "Data Engineer", SalaryUSD: 50000, CompanyLocation: "GB", CompanySize: models.Medium},
	{WorkYear: 2022, ExperienceLevel: models.Senior, EmploymentType: models.Contract, JobTitle: "Data Scientist", SalaryUSD: 75000, CompanyLocation: "US", CompanySize: models.Small},
	{WorkYear: 2023, ExperienceLevel: models.Entry, EmploymentType: models.PartTime, JobTitle: "Data Analyst", SalaryUSD: 30000, CompanyLocation: "IN", CompanySize: models.Medium},
}

func titles(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.JobTitle + "/" + r.CompanyLocation
	}
	return out
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	out := Apply(testRecords, DefaultState())
	require.Len(t, out, len(testRecords))
	assert.Equal(t, testRecords, out)

	out[0].JobTitle = "changed"
	assert.Equal(t, "Data Scientist", testRecords[0].JobTitle, "result must be a new slice")
}

func TestApply_EmptyInput(t *testing.T) {
	out := Apply(nil, DefaultState().Apply(ToggleCompanySize{Size: models.Large}))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApply_PreservesOrder(t *testing.T) {
	state := DefaultState().Apply(SelectJobTitle{Title: "Data Scientist"})
	out := Apply(testRecords, state)
	assert.Equal(t, []string{"Data Scientist/US", "Data Scientist/US"}, titles(out))
	assert.Equal(t, 100000.0, out[0].SalaryUSD)
	assert.Equal(t, 75000.0, out[1].SalaryUSD)
}

func TestApply_EmptySetMatchesEverything(t *testing.T) {
	state := DefaultState().
		Apply(ToggleExperienceLevel{Level: models.Senior}).
		Apply(ToggleExperienceLevel{Level: models.Senior})

	assert.Nil(t, state.ExperienceLevels)
	assert.True(t, state.IsDefault())
	assert.Len(t, Apply(testRecords, state), len(testRecords))
}

func TestApply_SetMembership(t *testing.T) {
	state := DefaultState().
		Apply(ToggleCompanySize{Size: models.Medium}).
		Apply(ToggleCompanySize{Size: models.Large})
	assert.Equal(t, []string{"Data Scientist/US", "Data Engineer/GB", "Data Analyst/IN"}, titles(Apply(testRecords, state)))

	state = state.Apply(ToggleEmploymentType{Type: models.FullTime})
	assert.Equal(t, []string{"Data Scientist/US", "Data Engineer/GB"}, titles(Apply(testRecords, state)))
}

func TestApply_SalaryRangeIsInclusive(t *testing.T) {
	state := DefaultState().Apply(SetSalaryRange{Min: Float(50000), Max: Float(75000)})
	out := Apply(testRecords, state)
	require.Len(t, out, 2)
	assert.Equal(t, 50000.0, out[0].SalaryUSD)
	assert.Equal(t, 75000.0, out[1].SalaryUSD)
}

func TestApply_OpenEndedSalaryBounds(t *testing.T) {
	state := DefaultState().Apply(SetMinSalary{Min: Float(75000)})
	assert.Len(t, Apply(testRecords, state), 2)

	state = DefaultState().Apply(SetMaxSalary{Max: Float(50000)})
	assert.Len(t, Apply(testRecords, state), 2)
}

func TestApply_InvertedRangeMatchesNothing(t *testing.T) {
	state := DefaultState().Apply(SetSalaryRange{Min: Float(90000), Max: Float(10000)})
	assert.Empty(t, Apply(testRecords, state))
}

func TestApply_CountryAndTitleCombine(t *testing.T) {
	state := DefaultState().
		Apply(ClickCountry{Code: "us"}).
		Apply(SelectJobTitle{Title: "Data Scientist"}).
		Apply(ToggleCompanySize{Size: models.Small})
	out := Apply(testRecords, state)
	require.Len(t, out, 1)
	assert.Equal(t, 75000.0, out[0].SalaryUSD)
}

func TestMatches_TitleIsExact(t *testing.T) {
	state := DefaultState().Apply(SelectJobTitle{Title: "data scientist"})
	assert.False(t, Matches(testRecords[0], state))
}
