package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/ui"
	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

const (
	titleWidth      = 36
	defaultBarWidth = 50
)

// Tooltip describes one region the way the map's hover label does.
func Tooltip(region models.Region, bundle aggregate.Bundle) string {
	name := region.Name
	if name == "" {
		name = region.Code
	}
	avg, ok := bundle.LocationAverage(region.Code)
	if !ok {
		return fmt.Sprintf("%s\nAverage Salary: %s", name, utils.NoData)
	}
	return fmt.Sprintf("%s\nAverage Salary: %s", name, utils.FormatSalaryCents(avg))
}

// MapSurface draws the choropleth as a table of regions, each with a swatch
// of its fill colour.
type MapSurface struct {
	Out     io.Writer
	Regions []models.Region
	// ShowEmpty lists regions without data too; otherwise only regions with
	// data and the highlighted region are listed.
	ShowEmpty bool

	fills map[string]pterm.RGB
}

// NewMapSurface creates a map surface over the boundary regions. regions may be
// nil, in which case the locations found in the data are listed by code.
func NewMapSurface(out io.Writer, regions []models.Region) *MapSurface {
	return &MapSurface{Out: out, Regions: regions, fills: make(map[string]pterm.RGB)}
}

func (m *MapSurface) Stage() Stage { return StageMap }

// Fill returns the colour a region was drawn with on the last render.
func (m *MapSurface) Fill(code string) (pterm.RGB, bool) {
	c, ok := m.fills[code]
	return c, ok
}

func (m *MapSurface) Render(f *Frame) error {
	scale := NewColorScale(f.Bundle.AverageSalaryByLocation)
	f.Scale = &scale

	// Every fill is recomputed from the scale, so the previously highlighted
	// region returns to its data colour before the new one is highlighted.
	m.fills = make(map[string]pterm.RGB)
	regions := m.regions(f)
	for _, r := range regions {
		m.fills[r.Code] = scale.Fill(f.Bundle.LocationAverage(r.Code))
	}
	if cur := f.View.Selection.Current; cur != "" {
		m.fills[cur] = HighlightFill
	}

	fmt.Fprintln(m.Out, pterm.DefaultSection.Sprint("Average salary by company location"))

	highlighted := f.View.Selection.Current
	data := pterm.TableData{{"", "Code", "Country", "Average Salary (USD)"}}
	for _, r := range regions {
		avg, ok := f.Bundle.LocationAverage(r.Code)
		if !ok && !m.ShowEmpty && r.Code != highlighted {
			continue
		}
		code := r.Code
		if r.Code == highlighted {
			code += " *"
		}
		data = append(data, []string{Swatch(m.fills[r.Code]), code, r.Name, utils.FormatOptionalSalary(avg, ok)})
	}
	if len(data) == 1 {
		fmt.Fprintln(m.Out, utils.NoData)
	} else {
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(m.Out, out)
	}

	fmt.Fprintln(m.Out, m.legend(scale))
	return nil
}

// regions returns the boundary regions plus any data location missing from them.
func (m *MapSurface) regions(f *Frame) []models.Region {
	known := make(map[string]bool, len(m.Regions))
	out := make([]models.Region, 0, len(m.Regions))
	for _, r := range m.Regions {
		known[r.Code] = true
		out = append(out, r)
	}
	extra := make([]string, 0)
	for code := range f.Bundle.AverageSalaryByLocation {
		if !known[code] {
			extra = append(extra, code)
			known[code] = true
		}
	}
	if cur := f.View.Selection.Current; cur != "" && !known[cur] {
		extra = append(extra, cur)
	}
	sort.Strings(extra)
	for _, code := range extra {
		out = append(out, models.Region{Code: code, Name: code})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (m *MapSurface) legend(scale ColorScale) string {
	var b strings.Builder
	b.WriteString("Average Salary in USD\n")
	for i, from := range LegendGrades {
		label := utils.FormatSalary(from) + "+"
		if i+1 < len(LegendGrades) {
			label = utils.FormatSalary(from) + "–" + utils.FormatSalary(LegendGrades[i+1])
		}
		fmt.Fprintf(&b, "%s %s\n", Swatch(scale.Fill(from+1, true)), label)
	}
	fmt.Fprintf(&b, "%s %s\n%s %s", Swatch(NoDataFill), utils.NoData, Swatch(HighlightFill), "Selected")
	return b.String()
}

// TableSurface lists the filtered records.
type TableSurface struct {
	Out     io.Writer
	MaxRows int // 0 = every row
}

func (t *TableSurface) Stage() Stage { return StageTable }

func (t *TableSurface) Render(f *Frame) error {
	fmt.Fprintln(t.Out, pterm.DefaultSection.Sprint("Job details"))
	if len(f.Records) == 0 {
		fmt.Fprintln(t.Out, "No matching records")
		return nil
	}

	rows := f.Records
	if t.MaxRows > 0 && len(rows) > t.MaxRows {
		rows = rows[:t.MaxRows]
	}

	data := pterm.TableData{{"Job Title", "Employment Type", "Experience Level", "Company Size", "Location", "Year", "Salary in USD ($)"}}
	for _, r := range rows {
		data = append(data, []string{
			utils.TruncateString(r.JobTitle, titleWidth),
			r.EmploymentType.Label(),
			r.ExperienceLevel.Label(),
			r.CompanySize.Label(),
			r.CompanyLocation,
			strconv.Itoa(r.WorkYear),
			ui.ColorizeSalary(r.SalaryUSD),
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(t.Out, out)

	if hidden := len(f.Records) - len(rows); hidden > 0 {
		fmt.Fprintf(t.Out, "... and %s more\n", humanize.Comma(int64(hidden)))
	}
	return nil
}

// CategorySurface draws the three category count bar charts.
type CategorySurface struct {
	Out   io.Writer
	Width int
}

func (c *CategorySurface) Stage() Stage { return StageCategories }

func (c *CategorySurface) Render(f *Frame) error {
	charts := []struct {
		title  string
		counts []aggregate.CategoryCount
	}{
		{"Records by experience level", f.Bundle.CountByExperienceLevel},
		{"Records by company size", f.Bundle.CountByCompanySize},
		{"Records by employment type", f.Bundle.CountByEmploymentType},
	}
	for _, ch := range charts {
		fmt.Fprintln(c.Out, pterm.DefaultSection.WithLevel(2).Sprint(ch.title))
		if len(ch.counts) == 0 {
			fmt.Fprintln(c.Out, utils.NoData)
			continue
		}
		bars := make(pterm.Bars, 0, len(ch.counts))
		for _, cc := range ch.counts {
			bars = append(bars, pterm.Bar{
				Label:      cc.Category,
				Value:      cc.Count,
				Style:      pterm.NewStyle(pterm.FgCyan),
				LabelStyle: pterm.NewStyle(pterm.FgDefault),
			})
		}
		out, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().WithWidth(c.width()).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.Out, out)
	}
	return nil
}

func (c *CategorySurface) width() int {
	if c.Width > 0 {
		return c.Width
	}
	return defaultBarWidth
}

// YearSurface draws the average salary per work year as bars plus a trend line.
type YearSurface struct {
	Out    io.Writer
	Height int
}

func (y *YearSurface) Stage() Stage { return StageYears }

func (y *YearSurface) Render(f *Frame) error {
	fmt.Fprintln(y.Out, pterm.DefaultSection.Sprint("Average salary by work year"))
	series := f.Bundle.AverageSalaryByYear
	if len(series) == 0 {
		fmt.Fprintln(y.Out, utils.NoData)
		return nil
	}

	bars := make(pterm.Bars, 0, len(series))
	for _, p := range series {
		bars = append(bars, pterm.Bar{
			Label:      strconv.Itoa(p.Year),
			Value:      int(p.Average),
			Style:      pterm.NewStyle(pterm.FgGreen),
			LabelStyle: pterm.NewStyle(pterm.FgDefault),
		})
	}
	height := y.Height
	if height <= 0 {
		height = 10
	}
	out, err := pterm.DefaultBarChart.WithBars(bars).WithHeight(height).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(y.Out, out)
	fmt.Fprintln(y.Out, TrendLine(series))
	return nil
}

// TrendLine renders the year series as "2021 $90k ↗ 2022 $110k".
func TrendLine(series []aggregate.YearAverage) string {
	var b strings.Builder
	for i, p := range series {
		if i > 0 {
			switch prev := series[i-1].Average; {
			case p.Average > prev:
				b.WriteString(" ↗ ")
			case p.Average < prev:
				b.WriteString(" ↘ ")
			default:
				b.WriteString(" → ")
			}
		}
		fmt.Fprintf(&b, "%d %s", p.Year, utils.CompactSalary(p.Average))
	}
	return b.String()
}

// CounterSurface draws the summary counters.
type CounterSurface struct {
	Out io.Writer
}

func (c *CounterSurface) Stage() Stage { return StageCounters }

func (c *CounterSurface) Render(f *Frame) error {
	avg, ok := f.Bundle.AverageSalary()
	lines := []string{
		fmt.Sprintf("Records:        %s", humanize.Comma(int64(f.Bundle.Total))),
		fmt.Sprintf("Average salary: %s", ui.ColorizeOptionalSalary(avg, ok)),
		fmt.Sprintf("Countries:      %d", f.Bundle.LocationCount()),
		fmt.Sprintf("Job titles:     %d", len(f.Bundle.DistinctJobTitles)),
		fmt.Sprintf("Active filters: %d (%s)", f.View.State.ActiveCount(), f.View.State),
	}
	fmt.Fprintln(c.Out, pterm.DefaultBox.WithTitle("Summary").Sprint(strings.Join(lines, "\n")))
	return nil
}

// TerminalSurfaces returns the standard terminal dashboard, one surface per stage.
func TerminalSurfaces(out io.Writer, regions []models.Region, maxRows, barWidth int) []Surface {
	return []Surface{
		NewMapSurface(out, regions),
		&TableSurface{Out: out, MaxRows: maxRows},
		&CategorySurface{Out: out, Width: barWidth},
		&YearSurface{Out: out},
		&CounterSurface{Out: out},
	}
}
