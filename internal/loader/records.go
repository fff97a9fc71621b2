package loader

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

// Column names of the salary dataset
const (
	ColWorkYear        = "work_year"
	ColExperienceLevel = "experience_level"
	ColEmploymentType  = "employment_type"
	ColJobTitle        = "job_title"
	ColSalaryUSD       = "salary_in_usd"
	ColCompanyLocation = "company_location"
	ColCompanySize     = "company_size"
)

var requiredColumns = []string{
	ColWorkYear,
	ColExperienceLevel,
	ColEmploymentType,
	ColJobTitle,
	ColSalaryUSD,
	ColCompanyLocation,
	ColCompanySize,
}

// BuildRecords converts raw rows into validated records. Every cell is first
// type-inferred; rows whose salary or work year is missing, non-numeric or
// negative are skipped. Unknown category codes are kept and counted.
// When progress is non-nil a progress bar is drawn to it.
func BuildRecords(header []string, rows [][]string, progress io.Writer) ([]models.Record, models.LoadReport, error) {
	report := models.LoadReport{Rows: len(rows)}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, report, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	var bar *pb.ProgressBar
	if progress != nil && len(rows) > 0 {
		bar = pb.New(len(rows)).SetWriter(progress).Start()
		defer bar.Finish()
	}

	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if bar != nil {
			bar.Increment()
		}
		cell := func(col string) any {
			i := index[col]
			if i >= len(row) {
				return nil
			}
			return InferValue(row[i])
		}

		salary, ok := numberCell(cell(ColSalaryUSD))
		if !ok || salary < 0 {
			report.Skipped++
			continue
		}
		year, ok := numberCell(cell(ColWorkYear))
		if !ok || year < 0 || year != math.Trunc(year) {
			report.Skipped++
			continue
		}

		rec := models.Record{
			WorkYear:        int(year),
			ExperienceLevel: models.ExperienceLevel(codeCell(cell(ColExperienceLevel))),
			EmploymentType:  models.EmploymentType(codeCell(cell(ColEmploymentType))),
			JobTitle:        textCell(cell(ColJobTitle)),
			SalaryUSD:       salary,
			CompanyLocation: codeCell(cell(ColCompanyLocation)),
			CompanySize:     models.CompanySize(codeCell(cell(ColCompanySize))),
		}
		if !rec.ExperienceLevel.Known() {
			report.UnknownCodes++
		}
		if !rec.EmploymentType.Known() {
			report.UnknownCodes++
		}
		if !rec.CompanySize.Known() {
			report.UnknownCodes++
		}
		records = append(records, rec)
	}

	report.Loaded = len(records)
	return records, report, nil
}

// InferValue types a raw cell: empty cells become nil, numeric cells float64,
// "true"/"false" bool, and everything else a trimmed string.
func InferValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	return s
}

func numberCell(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := utils.ParseSalary(val)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func textCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func codeCell(v any) string {
	return strings.ToUpper(textCell(v))
}

// normalizeHeader converts "Salary In USD" to "salary_in_usd".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
