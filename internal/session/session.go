package session

import (
	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarymap/internal/aggregate"
	"github.com/fr4nk3nst1ner/salarymap/internal/filter"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/render"
	"github.com/fr4nk3nst1ner/salarymap/internal/ui"
)

// Renderer draws one pipeline result. *render.Dispatcher implements it.
type Renderer interface {
	Render(bundle aggregate.Bundle, filtered []models.Record, view render.View) error
}

// Session owns the filter state and the highlighted map region for one user.
// Every user action goes through Dispatch, which replaces the state and runs
// the filter, aggregate and render pipeline exactly once.
type Session struct {
	ID uuid.UUID

	records  []models.Record
	regions  map[string]models.Region
	renderer Renderer
	picker   Picker
	logger   *pterm.Logger

	state     filter.State
	selection render.Selection

	dataset aggregate.Bundle // summary of the full dataset, taken once at start
	last    aggregate.Bundle
	runs    int
}

// Option configures a Session.
type Option func(*Session)

// WithRegions sets the boundary regions used for tooltips.
func WithRegions(regions []models.Region) Option {
	return func(s *Session) {
		for _, r := range regions {
			s.regions[r.Code] = r
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *pterm.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPicker replaces the interactive job-title picker.
func WithPicker(p Picker) Option {
	return func(s *Session) {
		s.picker = p
	}
}

// WithState sets the initial filter state.
func WithState(state filter.State) Option {
	return func(s *Session) {
		s.state = state
		s.selection = render.Selection{Current: deref(state.CountryCode)}
	}
}

// New creates a session over the loaded records.
func New(records []models.Record, renderer Renderer, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.New(),
		records:  records,
		regions:  make(map[string]models.Region),
		renderer: renderer,
		picker:   InteractivePicker{},
		logger:   ui.DiscardLogger(),
		state:    filter.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start summarizes the full dataset for the pickers and renders the initial dashboard.
func (s *Session) Start() error {
	s.dataset = aggregate.Summarize(s.records)
	s.logger.Debug("session started", s.logger.Args(
		"session", s.ID.String(),
		"records", len(s.records),
		"job_titles", len(s.dataset.DistinctJobTitles),
	))
	return s.run()
}

// Dispatch applies one user action and re-runs the pipeline once.
func (s *Session) Dispatch(a filter.Action) error {
	s.state = s.state.Apply(a)

	if current := deref(s.state.CountryCode); current != s.selection.Current {
		s.selection = render.Selection{Current: current, Previous: s.selection.Current}
	}
	return s.run()
}

// Refresh re-renders the current state without changing it.
func (s *Session) Refresh() error {
	return s.run()
}

func (s *Session) run() error {
	filtered := filter.Apply(s.records, s.state)
	bundle := aggregate.Summarize(filtered)
	s.last = bundle
	s.runs++

	s.logger.Trace("pipeline run", s.logger.Args(
		"session", s.ID.String(),
		"run", s.runs,
		"filters", s.state.String(),
		"matched", len(filtered),
	))

	view := render.View{Selection: s.selection, State: s.state}
	if err := s.renderer.Render(bundle, filtered, view); err != nil {
		s.logger.Warn("render failed", s.logger.Args("session", s.ID.String(), "error", err.Error()))
		return err
	}
	return nil
}

// State returns the current filter state.
func (s *Session) State() filter.State { return s.state }

// Selection returns the highlighted map region.
func (s *Session) Selection() render.Selection { return s.selection }

// Last returns the bundle of the latest pipeline run.
func (s *Session) Last() aggregate.Bundle { return s.last }

// Runs returns how many times the pipeline has run.
func (s *Session) Runs() int { return s.runs }

// Choices returns the distinct categorical values of the whole dataset.
func (s *Session) Choices() aggregate.DistinctValues { return s.dataset.Distinct }

// JobTitles returns every distinct job title of the dataset, sorted.
func (s *Session) JobTitles() []string { return s.dataset.DistinctJobTitles }

// Region looks up a boundary region, falling back to the bare code.
func (s *Session) Region(code string) models.Region {
	if r, ok := s.regions[code]; ok {
		return r
	}
	return models.Region{Code: code, Name: code}
}

// Tooltip describes a region using the latest pipeline result.
func (s *Session) Tooltip(code string) string {
	return render.Tooltip(s.Region(code), s.last)
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
