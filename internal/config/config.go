package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/salarymap/internal/filter"
	"github.com/fr4nk3nst1ner/salarymap/internal/models"
	"github.com/fr4nk3nst1ner/salarymap/internal/utils"
)

// Environment variables overriding the config file
const (
	EnvDataset  = "SALARYMAP_DATASET"
	EnvGeo      = "SALARYMAP_GEO"
	EnvChartDir = "SALARYMAP_CHART_DIR"
	EnvLogLevel = "SALARYMAP_LOG_LEVEL"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "salarymap.yaml"

// AppConfig represents the application configuration
type AppConfig struct {
	Dataset string        `yaml:"dataset"`
	Geo     string        `yaml:"geo"`
	Banner  bool          `yaml:"banner"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
	Charts  ChartsConfig  `yaml:"charts"`
	Filters FiltersConfig `yaml:"filters"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // colorful or json
}

type DisplayConfig struct {
	MaxRows  int `yaml:"max_rows"` // 0 lists every record
	BarWidth int `yaml:"bar_width"`
}

type ChartsConfig struct {
	Dir    string `yaml:"dir"` // empty disables PNG output
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FiltersConfig is the filter state the dashboard starts with.
type FiltersConfig struct {
	JobTitle         string   `yaml:"job_title"`
	CompanySizes     []string `yaml:"company_sizes"`
	ExperienceLevels []string `yaml:"experience_levels"`
	EmploymentTypes  []string `yaml:"employment_types"`
	MinSalary        string   `yaml:"min_salary"` // "80k", "$80,000", ...
	MaxSalary        string   `yaml:"max_salary"`
	Country          string   `yaml:"country"`
}

// Default returns the configuration used when no file exists.
func Default() *AppConfig {
	return &AppConfig{
		Dataset: "data/ds_salaries.csv",
		Geo:     "data/countries.geo.json",
		Banner:  true,
		Log:     LogConfig{Level: "info", Format: "colorful"},
		Display: DisplayConfig{MaxRows: 25, BarWidth: 50},
		Charts:  ChartsConfig{Width: 800, Height: 480},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies
// the environment overrides. A missing file is not an error.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *AppConfig) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataset); ok && v != "" {
		c.Dataset = v
	}
	if v, ok := lookup(EnvGeo); ok {
		c.Geo = v
	}
	if v, ok := lookup(EnvChartDir); ok {
		c.Charts.Dir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate reports every problem in the configuration at once.
func (c *AppConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Dataset) == "" {
		errs = append(errs, errors.New("dataset: required"))
	}
	if c.Display.MaxRows < 0 {
		errs = append(errs, fmt.Errorf("display.max_rows: must not be negative, got %d", c.Display.MaxRows))
	}
	if c.Charts.Width < 0 || c.Charts.Height < 0 {
		errs = append(errs, fmt.Errorf("charts: size must not be negative, got %dx%d", c.Charts.Width, c.Charts.Height))
	}
	if _, err := c.Filters.State(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Actions converts the configured filters into the actions that build them
// from the default state.
func (f FiltersConfig) Actions() ([]filter.Action, error) {
	var actions []filter.Action
	var errs []error

	if t := strings.TrimSpace(f.JobTitle); t != "" {
		actions = append(actions, filter.SelectJobTitle{Title: t})
	}
	for _, v := range unique(f.CompanySizes) {
		size := models.CompanySize(v)
		if !size.Known() {
			errs = append(errs, fmt.Errorf("filters.company_sizes: unknown code %q", v))
			continue
		}
		actions = append(actions, filter.ToggleCompanySize{Size: size})
	}
	for _, v := range unique(f.ExperienceLevels) {
		level := models.ExperienceLevel(v)
		if !level.Known() {
			errs = append(errs, fmt.Errorf("filters.experience_levels: unknown code %q", v))
			continue
		}
		actions = append(actions, filter.ToggleExperienceLevel{Level: level})
	}
	for _, v := range unique(f.EmploymentTypes) {
		typ := models.EmploymentType(v)
		if !typ.Known() {
			errs = append(errs, fmt.Errorf("filters.employment_types: unknown code %q", v))
			continue
		}
		actions = append(actions, filter.ToggleEmploymentType{Type: typ})
	}

	lo, err := salaryBound(f.MinSalary)
	if err != nil {
		errs = append(errs, fmt.Errorf("filters.min_salary: %w", err))
	}
	hi, err := salaryBound(f.MaxSalary)
	if err != nil {
		errs = append(errs, fmt.Errorf("filters.max_salary: %w", err))
	}
	if lo != nil && hi != nil && *lo > *hi {
		errs = append(errs, fmt.Errorf("filters: min_salary %s is above max_salary %s", f.MinSalary, f.MaxSalary))
	}
	if lo != nil || hi != nil {
		actions = append(actions, filter.SetSalaryRange{Min: lo, Max: hi})
	}

	if c := strings.TrimSpace(f.Country); c != "" {
		actions = append(actions, filter.ClickCountry{Code: c})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return actions, nil
}

// State builds the initial filter state.
func (f FiltersConfig) State() (filter.State, error) {
	actions, err := f.Actions()
	if err != nil {
		return filter.DefaultState(), err
	}
	state := filter.DefaultState()
	for _, a := range actions {
		state = state.Apply(a)
	}
	return state, nil
}

func salaryBound(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := utils.ParseSalary(s)
	if err != nil {
		return nil, err
	}
	return filter.Float(v), nil
}

// unique upper-cases codes and drops repeats, so a code listed twice is not
// toggled back off.
func unique(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
