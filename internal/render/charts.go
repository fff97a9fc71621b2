package render

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

// Chart file names written under the chart directory
const (
	ExperienceChartFile = "experience_level.png"
	SizeChartFile       = "company_size.png"
	EmploymentChartFile = "employment_type.png"
	YearChartFile       = "salary_by_year.png"
)

const (
	defaultChartWidth  = 800
	defaultChartHeight = 480
)

// ChartOptions configures PNG chart output.
type ChartOptions struct {
	Dir    string
	Width  int
	Height int
	Logger *pterm.Logger
}

func (o ChartOptions) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultChartWidth
	}
	if h <= 0 {
		h = defaultChartHeight
	}
	return w, h
}

func (o ChartOptions) path(name string) string {
	return filepath.Join(o.Dir, name)
}

// skip removes a stale chart that can no longer be drawn.
func (o ChartOptions) skip(name, reason string) error {
	if o.Logger != nil {
		o.Logger.Debug("chart skipped", o.Logger.Args("file", name, "reason", reason))
	}
	if err := os.Remove(o.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// CategoryChartFiles writes the category counts as PNG bar charts.
type CategoryChartFiles struct {
	ChartOptions
}

func (c *CategoryChartFiles) Stage() Stage { return StageCategories }

func (c *CategoryChartFiles) Render(f *Frame) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	charts := []struct {
		file   string
		title  string
		counts []aggregate.CategoryCount
	}{
		{ExperienceChartFile, "Records by experience level", f.Bundle.CountByExperienceLevel},
		{SizeChartFile, "Records by company size", f.Bundle.CountByCompanySize},
		{EmploymentChartFile, "Records by employment type", f.Bundle.CountByEmploymentType},
	}

	var errs []error
	for _, ch := range charts {
		if len(ch.counts) == 0 {
			if err := c.skip(ch.file, "no data"); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if err := c.writeBarChart(ch.file, ch.title, ch.counts); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.file, err))
		}
	}
	return errors.Join(errs...)
}

func (c *CategoryChartFiles) writeBarChart(name, title string, counts []aggregate.CategoryCount) error {
	width, height := c.size()

	bars := make([]chart.Value, 0, len(counts))
	top := 0
	for _, cc := range counts {
		bars = append(bars, chart.Value{Label: cc.Category, Value: float64(cc.Count)})
		if cc.Count > top {
			top = cc.Count
		}
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: math.Ceil(float64(top) * 1.1)},
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		Bars: bars,
	}
	return writePNG(c.path(name), graph.Render)
}

// YearChartFiles writes the average salary per work year as a PNG line chart.
type YearChartFiles struct {
	ChartOptions
}

func (y *YearChartFiles) Stage() Stage { return StageYears }

func (y *YearChartFiles) Render(f *Frame) error {
	if err := os.MkdirAll(y.Dir, 0o755); err != nil {
		return err
	}
	series := f.Bundle.AverageSalaryByYear
	if len(series) < 2 {
		return y.skip(YearChartFile, "fewer than two work years")
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	top := 0.0
	for i, p := range series {
		xs[i] = float64(p.Year)
		ys[i] = p.Average
		top = math.Max(top, p.Average)
	}
	if top == 0 {
		top = 1
	}

	width, height := y.size()
	graph := chart.Chart{
		Title:      "Average salary by work year",
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16}},
		XAxis: chart.XAxis{
			Name:           "Work year",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		YAxis: chart.YAxis{
			Name:           "USD",
			Range:          &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string { return utils.CompactSalary(toFloat(v)) },
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Average salary",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
					DotColor:    chart.ColorGreen,
					DotWidth:    4,
				},
			},
		},
	}
	return writePNG(y.path(YearChartFile), graph.Render)
}

func toFloat(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

type pngRenderer func(rp chart.RendererProvider, w io.Writer) error

func writePNG(path string, render pngRenderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ChartSurfaces returns the PNG chart surfaces for opts.
func ChartSurfaces(opts ChartOptions) []Surface {
	return []Surface{
		&CategoryChartFiles{ChartOptions: opts},
		&YearChartFiles{ChartOptions: opts},
	}
}
