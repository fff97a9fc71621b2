package filter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/fr4nk3nst1ner/salarymap/internal/models"
)

// State holds the active filter predicates. A nil pointer or an empty set means
// the field imposes no constraint, so the zero State is the identity filter.
// States are replaced, never mutated: every transition returns a new value.
type State struct {
	JobTitle         *string
	CompanySizes     models.Set[models.CompanySize]
	ExperienceLevels models.Set[models.ExperienceLevel]
	EmploymentTypes  models.Set[models.EmploymentType]
	MinSalary        *float64
	MaxSalary        *float64
	CountryCode      *string
}

// DefaultState returns the state with every field unset.
func DefaultState() State {
	return State{}
}

// IsDefault reports whether no field constrains the dataset
func (s State) IsDefault() bool {
	return s.ActiveCount() == 0
}

// ActiveCount returns how many fields currently constrain the dataset.
func (s State) ActiveCount() int {
	n := 0
	if s.JobTitle != nil {
		n++
	}
	if !s.CompanySizes.Empty() {
		n++
	}
	if !s.ExperienceLevels.Empty() {
		n++
	}
	if !s.EmploymentTypes.Empty() {
		n++
	}
	if s.MinSalary != nil || s.MaxSalary != nil {
		n++
	}
	if s.CountryCode != nil {
		n++
	}
	return n
}

// Apply runs one user action against s and returns the resulting state.
func (s State) Apply(a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// String renders the active constraints for the session's state command.
func (s State) String() string {
	if s.IsDefault() {
		return "no filters"
	}
	var parts []string
	if s.JobTitle != nil {
		parts = append(parts, fmt.Sprintf("title=%q", *s.JobTitle))
	}
	if !s.CompanySizes.Empty() {
		parts = append(parts, "size="+joinCodes(s.CompanySizes.Sorted()))
	}
	if !s.ExperienceLevels.Empty() {
		parts = append(parts, "exp="+joinCodes(s.ExperienceLevels.Sorted()))
	}
	if !s.EmploymentTypes.Empty() {
		parts = append(parts, "type="+joinCodes(s.EmploymentTypes.Sorted()))
	}
	if s.MinSalary != nil || s.MaxSalary != nil {
		parts = append(parts, "salary="+boundString(s.MinSalary, "0")+".."+boundString(s.MaxSalary, "inf"))
	}
	if s.CountryCode != nil {
		parts = append(parts, "country="+*s.CountryCode)
	}
	return strings.Join(parts, " ")
}

func joinCodes[T ~string](codes []T) string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return strings.Join(out, ",")
}

func boundString(v *float64, unset string) string {
	if v == nil {
		return unset
	}
	return "$" + humanize.Commaf(*v)
}

// Action is a single user interaction that transitions the filter state.
type Action interface {
	apply(State) State
}

// SelectJobTitle sets the exact job-title constraint. An empty title clears it.
type SelectJobTitle struct {
	Title string
}

func (a SelectJobTitle) apply(s State) State {
	if a.Title == "" {
		s.JobTitle = nil
		return s
	}
	title := a.Title
	s.JobTitle = &title
	return s
}

// ToggleCompanySize adds or removes one company size.
type ToggleCompanySize struct {
	Size models.CompanySize
}

func (a ToggleCompanySize) apply(s State) State {
	s.CompanySizes = s.CompanySizes.Toggle(a.Size)
	return s
}

// ToggleExperienceLevel adds or removes one experience level.
type ToggleExperienceLevel struct {
	Level models.ExperienceLevel
}

func (a ToggleExperienceLevel) apply(s State) State {
	s.ExperienceLevels = s.ExperienceLevels.Toggle(a.Level)
	return s
}

// ToggleEmploymentType adds or removes one employment type.
type ToggleEmploymentType struct {
	Type models.EmploymentType
}

func (a ToggleEmploymentType) apply(s State) State {
	s.EmploymentTypes = s.EmploymentTypes.Toggle(a.Type)
	return s
}

// SetSalaryRange replaces both salary bounds. A nil bound is unbounded.
type SetSalaryRange struct {
	Min *float64
	Max *float64
}

func (a SetSalaryRange) apply(s State) State {
	s.MinSalary = copyFloat(a.Min)
	s.MaxSalary = copyFloat(a.Max)
	return s
}

// SetMinSalary replaces the lower bound only.
type SetMinSalary struct {
	Min *float64
}

func (a SetMinSalary) apply(s State) State {
	s.MinSalary = copyFloat(a.Min)
	return s
}

// SetMaxSalary replaces the upper bound only.
type SetMaxSalary struct {
	Max *float64
}

func (a SetMaxSalary) apply(s State) State {
	s.MaxSalary = copyFloat(a.Max)
	return s
}

// ClickCountry selects a map region. Clicking the selected region again clears
// the location constraint; clicking another region replaces it.
type ClickCountry struct {
	Code string
}

func (a ClickCountry) apply(s State) State {
	code := strings.ToUpper(strings.TrimSpace(a.Code))
	if code == "" || (s.CountryCode != nil && *s.CountryCode == code) {
		s.CountryCode = nil
		return s
	}
	s.CountryCode = &code
	return s
}

// Clear resets every field in one step.
type Clear struct{}

func (Clear) apply(State) State {
	return DefaultState()
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Float returns a pointer to v, for building salary bounds.
func Float(v float64) *float64 {
	return &v
}
