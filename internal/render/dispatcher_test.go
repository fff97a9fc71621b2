package render

import (
	"errors"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

type fakeSurface struct {
	name  string
	stage Stage
	err   error
	log   *[]string
	frame *Frame
}

func (f *fakeSurface) Stage() Stage { return f.stage }

func (f *fakeSurface) Render(frame *Frame) error {
	*f.log = append(*f.log, f.name)
	f.frame = frame
	return f.err
}

func TestDispatcher_RendersInStageOrder(t *testing.T) {
	var log []string
	d := NewDispatcher(
		&fakeSurface{name: "counters", stage: StageCounters, log: &log},
		&fakeSurface{name: "table", stage: StageTable, log: &log},
		&fakeSurface{name: "png-categories", stage: StageCategories, log: &log},
		&fakeSurface{name: "map", stage: StageMap, log: &log},
	)
	d.Register(&fakeSurface{name: "bars-categories", stage: StageCategories, log: &log})
	d.Register(nil)

	require.NoError(t, d.Render(aggregate.Summarize(nil), nil, View{}))
	assert.Equal(t, []string{"map", "table", "png-categories", "bars-categories", "counters"}, log)
	assert.Len(t, d.Surfaces(), 5)
}

func TestDispatcher_ContinuesPastFailures(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	disk := errors.New("disk full")
	d := NewDispatcher(
		&fakeSurface{name: "map", stage: StageMap, log: &log, err: boom},
		&fakeSurface{name: "table", stage: StageTable, log: &log},
		&fakeSurface{name: "years", stage: StageYears, log: &log, err: disk},
	)

	err := d.Render(aggregate.Summarize(nil), nil, View{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, disk)
	assert.Contains(t, err.Error(), "render map: boom")
	assert.Contains(t, err.Error(), "render years: disk full")
	assert.Equal(t, []string{"map", "table", "years"}, log)
}

func TestDispatcher_SharesOneFrame(t *testing.T) {
	var log []string
	first := &fakeSurface{name: "a", stage: StageMap, log: &log}
	second := &fakeSurface{name: "b", stage: StageCounters, log: &log}
	d := NewDispatcher(first, second)

	records := []models.Record{{JobTitle: "x", SalaryUSD: 10, CompanyLocation: "US"}}
	view := View{Selection: Selection{Current: "US"}}
	require.NoError(t, d.Render(aggregate.Summarize(records), records, view))

	require.NotNil(t, first.frame)
	assert.Same(t, first.frame, second.frame)
	assert.Equal(t, records, second.frame.Records)
	assert.Equal(t, "US", second.frame.View.Selection.Current)
	assert.Equal(t, 1, second.frame.Bundle.Total)
}

func TestFrame_ColorScaleFallsBackWithoutMap(t *testing.T) {
	f := &Frame{Bundle: aggregate.Bundle{AverageSalaryByLocation: map[string]float64{"US": 10, "GB": 20}}}
	scale := f.ColorScale()
	assert.Equal(t, 10.0, scale.Min)
	assert.Equal(t, 20.0, scale.Max)
	assert.NotNil(t, f.Scale)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "map", StageMap.String())
	assert.Equal(t, "counters", StageCounters.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
}
