package models

// Record is one row of the salary dataset. Records are never modified after load.
type Record struct {
	WorkYear        int             `json:"work_year"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	EmploymentType  EmploymentType  `json:"employment_type"`
	JobTitle        string          `json:"job_title"`
	SalaryUSD       float64         `json:"salary_in_usd"`
	CompanyLocation string          `json:"company_location"`
	CompanySize     CompanySize     `json:"company_size"`
}

// ExperienceLevel is the seniority code of a record
type ExperienceLevel string

const (
	Entry     ExperienceLevel = "EN"
	Mid       ExperienceLevel = "MI"
	Senior    ExperienceLevel = "SE"
	Executive ExperienceLevel = "EX"
)

// ExperienceLevels lists the known codes in display order.
var ExperienceLevels = []ExperienceLevel{Entry, Mid, Senior, Executive}

// Label returns the display label, or the raw code when it is not a known level.
func (l ExperienceLevel) Label() string {
	switch l {
	case Entry:
		return "Entry-level"
	case Mid:
		return "Mid-level"
	case Senior:
		return "Senior"
	case Executive:
		return "Executive"
	}
	return string(l)
}

// Known reports whether l is one of the enumerated codes.
func (l ExperienceLevel) Known() bool {
	return l.Label() != string(l)
}

// EmploymentType is the contract code of a record
type EmploymentType string

const (
	PartTime  EmploymentType = "PT"
	FullTime  EmploymentType = "FT"
	Contract  EmploymentType = "CT"
	Freelance EmploymentType = "FL"
)

// EmploymentTypes lists the known codes in display order.
var EmploymentTypes = []EmploymentType{PartTime, FullTime, Contract, Freelance}

// Label returns the display label, or the raw code when it is not a known type.
func (t EmploymentType) Label() string {
	switch t {
	case PartTime:
		return "Part-time"
	case FullTime:
		return "Full-time"
	case Contract:
		return "Contract"
	case Freelance:
		return "Freelance"
	}
	return string(t)
}

// Known reports whether t is one of the enumerated codes.
func (t EmploymentType) Known() bool {
	return t.Label() != string(t)
}

// CompanySize is the headcount bucket of the employer
type CompanySize string

const (
	Small  CompanySize = "S"
	Medium CompanySize = "M"
	Large  CompanySize = "L"
)

// CompanySizes lists the known codes in display order.
var CompanySizes = []CompanySize{Small, Medium, Large}

// Label returns the display label, or the raw code when it is not a known size.
func (s CompanySize) Label() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	}
	return string(s)
}

// Known reports whether s is one of the enumerated codes.
func (s CompanySize) Known() bool {
	return s.Label() != string(s)
}

// LoadReport summarizes data quality issues found while loading a dataset
type LoadReport struct {
	Source       string `json:"source"`
	Rows         int    `json:"rows"`
	Loaded       int    `json:"loaded"`
	Skipped      int    `json:"skipped"`
	UnknownCodes int    `json:"unknown_codes"`
}

// Region is a map region from the geographic boundary resource
type Region struct {
	Code string `json:"iso_a2"`
	Name string `json:"name"`
}
