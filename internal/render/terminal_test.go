package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/filter"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

var regions = []models.Region{
	{Code: "DE", Name: "Germany"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "US", Name: "United States of America"},
}

var sample = []models.Record{
	{WorkYear: 2021, ExperienceLevel: models.Senior, EmploymentType: models.FullTime, JobTitle: "Data Scientist", SalaryUSD: 100000, CompanyLocation: "US", CompanySize: models.Large},
	{WorkYear: 2022, ExperienceLevel: models.Mid, EmploymentType: models.FullTime, JobTitle: "Data Engineer", SalaryUSD: 50000, CompanyLocation: "GB", CompanySize: models.Medium},
	{WorkYear: 2021, ExperienceLevel: models.Senior, EmploymentType: models.Contract, JobTitle: "Data Scientist", SalaryUSD: 75000, CompanyLocation: "US", CompanySize: models.Large},
}

func frame(records []models.Record, view View) *Frame {
	return &Frame{Bundle: aggregate.Summarize(records), Records: records, View: view}
}

func TestTooltip(t *testing.T) {
	b := aggregate.Summarize(sample)
	assert.Equal(t, "United States of America\nAverage Salary: $87,500.00", Tooltip(regions[2], b))
	assert.Equal(t, "Germany\nAverage Salary: No data", Tooltip(regions[0], b))
	assert.Equal(t, "FR\nAverage Salary: No data", Tooltip(models.Region{Code: "FR"}, b))
}

func TestMapSurface_FillsAndHighlight(t *testing.T) {
	var out bytes.Buffer
	m := NewMapSurface(&out, regions)

	f := frame(sample, View{Selection: Selection{Current: "GB"}})
	require.NoError(t, m.Render(f))
	require.NotNil(t, f.Scale)

	gb, _ := m.Fill("GB")
	us, _ := m.Fill("US")
	de, _ := m.Fill("DE")
	assert.Equal(t, HighlightFill, gb)
	assert.Equal(t, ScaleHigh, us)
	assert.Equal(t, NoDataFill, de)

	// the previously highlighted region returns to its data colour
	f = frame(sample, View{Selection: Selection{Current: "US", Previous: "GB"}})
	require.NoError(t, m.Render(f))
	gb, _ = m.Fill("GB")
	us, _ = m.Fill("US")
	assert.Equal(t, ScaleLow, gb)
	assert.Equal(t, HighlightFill, us)

	text := out.String()
	assert.Contains(t, text, "Average salary by company location")
	assert.Contains(t, text, "US *")
	assert.Contains(t, text, "$87,500")
	assert.Contains(t, text, "Average Salary in USD")
	assert.NotContains(t, text, "Germany", "regions without data are hidden by default")
}

func TestMapSurface_ShowEmptyAndUnknownLocations(t *testing.T) {
	var out bytes.Buffer
	m := NewMapSurface(&out, regions)
	m.ShowEmpty = true

	records := append([]models.Record{{JobTitle: "x", SalaryUSD: 10, CompanyLocation: "BR"}}, sample...)
	require.NoError(t, m.Render(frame(records, View{})))
	assert.Contains(t, out.String(), "Germany")
	assert.Contains(t, out.String(), "BR")

	br, ok := m.Fill("BR")
	require.True(t, ok)
	assert.Equal(t, ScaleLow, br)
}

func TestMapSurface_NoData(t *testing.T) {
	var out bytes.Buffer
	m := NewMapSurface(&out, regions)
	f := frame(nil, View{})
	require.NoError(t, m.Render(f))

	assert.True(t, f.Scale.Empty())
	us, _ := m.Fill("US")
	assert.Equal(t, NoDataFill, us)
	assert.Contains(t, out.String(), "No data")
}

func TestTableSurface(t *testing.T) {
	var out bytes.Buffer
	s := &TableSurface{Out: &out, MaxRows: 2}
	require.NoError(t, s.Render(frame(sample, View{})))

	text := out.String()
	assert.Contains(t, text, "Salary in USD ($)")
	assert.Contains(t, text, "Full-time")
	assert.Contains(t, text, "Senior")
	assert.Contains(t, text, "$100,000")
	assert.NotContains(t, text, "$75,000")
	assert.Contains(t, text, "... and 1 more")

	out.Reset()
	require.NoError(t, s.Render(frame(nil, View{})))
	assert.Contains(t, out.String(), "No matching records")
}

func TestCategorySurface(t *testing.T) {
	var out bytes.Buffer
	s := &CategorySurface{Out: &out, Width: 20}
	require.NoError(t, s.Render(frame(sample, View{})))
	text := out.String()
	assert.Contains(t, text, "Records by experience level")
	assert.Contains(t, text, "Mid-level")
	assert.Contains(t, text, "Contract")

	out.Reset()
	require.NoError(t, s.Render(frame(nil, View{})))
	assert.Equal(t, 3, strings.Count(out.String(), "No data"))
}

func TestYearSurface(t *testing.T) {
	var out bytes.Buffer
	s := &YearSurface{Out: &out, Height: 5}
	require.NoError(t, s.Render(frame(sample, View{})))
	assert.Contains(t, out.String(), "2021 $87.5k ↘ 2022 $50k")

	out.Reset()
	require.NoError(t, s.Render(frame(nil, View{})))
	assert.Contains(t, out.String(), "No data")
}

func TestTrendLine(t *testing.T) {
	assert.Equal(t, "", TrendLine(nil))
	assert.Equal(t, "2020 $50k ↗ 2021 $60k → 2022 $60k", TrendLine([]aggregate.YearAverage{
		{Year: 2020, Average: 50000},
		{Year: 2021, Average: 60000},
		{Year: 2022, Average: 60000},
	}))
}

func TestCounterSurface(t *testing.T) {
	var out bytes.Buffer
	s := &CounterSurface{Out: &out}
	state := filter.DefaultState().Apply(filter.ClickCountry{Code: "US"})
	require.NoError(t, s.Render(frame(sample[:1], View{State: state})))

	text := out.String()
	assert.Contains(t, text, "Records:        1")
	assert.Contains(t, text, "$100,000")
	assert.Contains(t, text, "Active filters: 1 (country=US)")

	out.Reset()
	require.NoError(t, s.Render(frame(nil, View{})))
	assert.Contains(t, out.String(), "No data")
	assert.Contains(t, out.String(), "Active filters: 0 (no filters)")
}

func TestTerminalSurfaces_CoverEveryStage(t *testing.T) {
	d := NewDispatcher(TerminalSurfaces(&bytes.Buffer{}, regions, 10, 20)...)
	var stages []Stage
	for _, s := range d.Surfaces() {
		stages = append(stages, s.Stage())
	}
	assert.Equal(t, []Stage{StageMap, StageTable, StageCategories, StageYears, StageCounters}, stages)
	assert.NoError(t, d.Render(aggregate.Summarize(sample), sample, View{}))
}
