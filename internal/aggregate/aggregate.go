package aggregate

import (
	"sort"

	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

// CategoryCount is the number of records sharing one display label
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// YearAverage is the mean salary of one work year
type YearAverage struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
}

// DistinctValues holds the raw codes seen per categorical field, in order of
// first occurrence. Used to populate pickers when the dataset first loads.
type DistinctValues struct {
	ExperienceLevels []models.ExperienceLevel `json:"experience_levels"`
	EmploymentTypes  []models.EmploymentType  `json:"employment_types"`
	CompanySizes     []models.CompanySize     `json:"company_sizes"`
	Locations        []string                 `json:"locations"`
	Years            []int                    `json:"years"`
}

// Bundle is every derived structure of one pipeline run.
type Bundle struct {
	AverageSalaryByLocation map[string]float64 `json:"average_salary_by_location"`
	CountByExperienceLevel  []CategoryCount    `json:"count_by_experience_level"`
	CountByCompanySize      []CategoryCount    `json:"count_by_company_size"`
	CountByEmploymentType   []CategoryCount    `json:"count_by_employment_type"`
	AverageSalaryByYear     []YearAverage      `json:"average_salary_by_year"`
	DistinctJobTitles       []string           `json:"distinct_job_titles"`
	Distinct                DistinctValues     `json:"distinct"`
	Total                   int                `json:"total"`

	salarySum float64
	minSalary float64
	maxSalary float64
}

// AverageSalary is the mean over every summarized record. ok is false when the
// bundle was built from no records.
func (b Bundle) AverageSalary() (avg float64, ok bool) {
	if b.Total == 0 {
		return 0, false
	}
	return b.salarySum / float64(b.Total), true
}

// SalaryExtent returns the smallest and largest salary summarized.
func (b Bundle) SalaryExtent() (lo, hi float64, ok bool) {
	if b.Total == 0 {
		return 0, 0, false
	}
	return b.minSalary, b.maxSalary, true
}

// LocationAverage looks up one location's mean salary.
func (b Bundle) LocationAverage(code string) (float64, bool) {
	avg, ok := b.AverageSalaryByLocation[code]
	return avg, ok
}

// running accumulates a sum and count for one group key
type running struct {
	sum   float64
	count int
}

func (r running) mean() float64 {
	return r.sum / float64(r.count)
}

// counter counts labels, remembering the order each label was first seen
type counter struct {
	index map[string]int
	out   []CategoryCount
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(label string) {
	if i, ok := c.index[label]; ok {
		c.out[i].Count++
		return
	}
	c.index[label] = len(c.out)
	c.out = append(c.out, CategoryCount{Category: label, Count: 1})
}

// firstSeen collects distinct values in first-occurrence order
type firstSeen[T comparable] struct {
	seen map[T]struct{}
	out  []T
}

func newFirstSeen[T comparable]() *firstSeen[T] {
	return &firstSeen[T]{seen: make(map[T]struct{})}
}

func (f *firstSeen[T]) add(v T) {
	if _, ok := f.seen[v]; ok {
		return
	}
	f.seen[v] = struct{}{}
	f.out = append(f.out, v)
}

// Summarize derives a Bundle from records in a single pass. It never fails:
// an empty input yields empty maps and sequences and absent averages.
func Summarize(records []models.Record) Bundle {
	byLocation := make(map[string]*running)
	byYear := make(map[int]*running)
	experience := newCounter()
	size := newCounter()
	employment := newCounter()

	titles := newFirstSeen[string]()
	levels := newFirstSeen[models.ExperienceLevel]()
	types := newFirstSeen[models.EmploymentType]()
	sizes := newFirstSeen[models.CompanySize]()
	locations := newFirstSeen[string]()
	years := newFirstSeen[int]()

	b := Bundle{}
	for i, r := range records {
		loc, ok := byLocation[r.CompanyLocation]
		if !ok {
			loc = &running{}
			byLocation[r.CompanyLocation] = loc
		}
		loc.sum += r.SalaryUSD
		loc.count++

		yr, ok := byYear[r.WorkYear]
		if !ok {
			yr = &running{}
			byYear[r.WorkYear] = yr
		}
		yr.sum += r.SalaryUSD
		yr.count++

		experience.add(r.ExperienceLevel.Label())
		size.add(r.CompanySize.Label())
		employment.add(r.EmploymentType.Label())

		titles.add(r.JobTitle)
		levels.add(r.ExperienceLevel)
		types.add(r.EmploymentType)
		sizes.add(r.CompanySize)
		locations.add(r.CompanyLocation)
		years.add(r.WorkYear)

		b.salarySum += r.SalaryUSD
		if i == 0 || r.SalaryUSD < b.minSalary {
			b.minSalary = r.SalaryUSD
		}
		if i == 0 || r.SalaryUSD > b.maxSalary {
			b.maxSalary = r.SalaryUSD
		}
	}
	b.Total = len(records)

	b.AverageSalaryByLocation = make(map[string]float64, len(byLocation))
	for code, acc := range byLocation {
		b.AverageSalaryByLocation[code] = acc.mean()
	}

	b.AverageSalaryByYear = make([]YearAverage, 0, len(byYear))
	for year, acc := range byYear {
		b.AverageSalaryByYear = append(b.AverageSalaryByYear, YearAverage{Year: year, Average: acc.mean()})
	}
	sort.Slice(b.AverageSalaryByYear, func(i, j int) bool {
		return b.AverageSalaryByYear[i].Year < b.AverageSalaryByYear[j].Year
	})

	b.CountByExperienceLevel = nonNil(experience.out)
	b.CountByCompanySize = nonNil(size.out)
	b.CountByEmploymentType = nonNil(employment.out)

	b.DistinctJobTitles = nonNil(titles.out)
	sort.Strings(b.DistinctJobTitles)

	b.Distinct = DistinctValues{
		ExperienceLevels: nonNil(levels.out),
		EmploymentTypes:  nonNil(types.out),
		CompanySizes:     nonNil(sizes.out),
		Locations:        nonNil(locations.out),
		Years:            nonNil(years.out),
	}
	return b
}

// LocationCount returns how many distinct locations have data.
func (b Bundle) LocationCount() int {
	return len(b.AverageSalaryByLocation)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
