package render

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/filter"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

// Stage orders surfaces within one render pass. Later stages may rely on
// state published to the Frame by earlier ones, such as the map colour scale.
type Stage int

const (
	StageMap Stage = iota
	StageTable
	StageCategories
	StageYears
	StageCounters
)

func (s Stage) String() string {
	switch s {
	case StageMap:
		return "map"
	case StageTable:
		return "table"
	case StageCategories:
		return "categories"
	case StageYears:
		return "years"
	case StageCounters:
		return "counters"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Selection is the highlighted map region. Previous is the region that was
// highlighted before the latest click, if any.
type Selection struct {
	Current  string
	Previous string
}

// View carries the session state a render pass needs besides the aggregates.
type View struct {
	Selection Selection
	State     filter.State
}

// Frame is shared by every surface during one render pass.
type Frame struct {
	Bundle  aggregate.Bundle
	Records []models.Record
	View    View

	// Scale is published by the map stage.
	Scale *ColorScale
}

// ColorScale returns the frame's scale, building it when no map surface ran.
func (f *Frame) ColorScale() ColorScale {
	if f.Scale == nil {
		scale := NewColorScale(f.Bundle.AverageSalaryByLocation)
		f.Scale = &scale
	}
	return *f.Scale
}

// Surface is one visual output of the dashboard.
type Surface interface {
	Stage() Stage
	Render(f *Frame) error
}

// Dispatcher updates every registered surface on each render, in stage order.
type Dispatcher struct {
	surfaces []Surface
}

// NewDispatcher creates a dispatcher over surfaces. Surfaces sharing a stage
// keep their registration order.
func NewDispatcher(surfaces ...Surface) *Dispatcher {
	d := &Dispatcher{}
	for _, s := range surfaces {
		d.Register(s)
	}
	return d
}

// Register adds a surface.
func (d *Dispatcher) Register(s Surface) {
	if s == nil {
		return
	}
	d.surfaces = append(d.surfaces, s)
	sort.SliceStable(d.surfaces, func(i, j int) bool {
		return d.surfaces[i].Stage() < d.surfaces[j].Stage()
	})
}

// Surfaces returns the registered surfaces in render order.
func (d *Dispatcher) Surfaces() []Surface {
	out := make([]Surface, len(d.surfaces))
	copy(out, d.surfaces)
	return out
}

// Render draws bundle and the filtered records on every surface. A failing
// surface does not stop the ones after it; all failures are returned joined.
func (d *Dispatcher) Render(bundle aggregate.Bundle, filtered []models.Record, view View) error {
	frame := &Frame{
		Bundle:  bundle,
		Records: filtered,
		View:    view,
	}

	var errs []error
	for _, s := range d.surfaces {
		if err := s.Render(frame); err != nil {
			errs = append(errs, fmt.Errorf("render %s: %w", s.Stage(), err))
		}
	}
	return errors.Join(errs...)
}
