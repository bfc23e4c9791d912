package chrono

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Amount is a signed, possibly multi-unit quantity applied to a temporal
// via double dispatch: the amount decides how its units combine with the
// specific target type.
type Amount interface {
	AddTo(Temporal) (Temporal, error)
	SubtractFrom(Temporal) (Temporal, error)
}

// AddAmount applies an amount to a temporal.
func AddAmount(t Temporal, a Amount) (Temporal, error) {
	return a.AddTo(t)
}

// SubtractAmount removes an amount from a temporal.
func SubtractAmount(t Temporal, a Amount) (Temporal, error) {
	return a.SubtractFrom(t)
}

// Period is a signed amount of years and months, the ISO-8601 "P1Y2M"
// form restricted to the units this package models.
type Period struct {
	years  int64
	months int64
}

// periodRegex matches the ISO-8601 year/month period form, with an
// optional leading sign applying to the whole period.
var periodRegex = regexp.MustCompile(`^([+-]?)P(?:(-?[0-9]+)Y)?(?:(-?[0-9]+)M)?$`)

// PeriodOf creates a Period of years and months.
func PeriodOf(years, months int64) Period {
	return Period{years: years, months: months}
}

// PeriodOfYears creates a Period of whole years.
func PeriodOfYears(years int64) Period {
	return Period{years: years}
}

// PeriodOfMonths creates a Period of whole months.
func PeriodOfMonths(months int64) Period {
	return Period{months: months}
}

// ParsePeriod parses the ISO-8601 year/month period form: an optional
// sign, "P", then at least one of "<n>Y" and "<n>M".
func ParsePeriod(value string) (Period, error) {
	match := periodRegex.FindStringSubmatch(value)
	if match == nil || (match[2] == "" && match[3] == "") {
		return Period{}, errParse("period", value)
	}

	var p Period
	var err error
	if match[2] != "" {
		if p.years, err = strconv.ParseInt(match[2], 10, 64); err != nil {
			return Period{}, errParse("period", value).WithCause(err)
		}
	}
	if match[3] != "" {
		if p.months, err = strconv.ParseInt(match[3], 10, 64); err != nil {
			return Period{}, errParse("period", value).WithCause(err)
		}
	}
	if match[1] == "-" {
		p = p.Negated()
	}
	return p, nil
}

// MustParsePeriod parses a period, panicking on invalid input.
func MustParsePeriod(value string) Period {
	p, err := ParsePeriod(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Years returns the years component.
func (p Period) Years() int64 {
	return p.years
}

// Months returns the months component.
func (p Period) Months() int64 {
	return p.months
}

// IsZero returns true if both components are zero.
func (p Period) IsZero() bool {
	return p.years == 0 && p.months == 0
}

// Negated returns the period with both components negated.
func (p Period) Negated() Period {
	return Period{years: -p.years, months: -p.months}
}

// Plus adds another period component-wise.
func (p Period) Plus(other Period) Period {
	return Period{years: p.years + other.years, months: p.months + other.months}
}

// Equals checks if two periods have identical components.
func (p Period) Equals(other Period) bool {
	return p == other
}

// AddTo applies the period to a temporal, one unit at a time. Components
// that are zero are skipped, so a pure-years period applies cleanly to
// types that do not support months.
func (p Period) AddTo(t Temporal) (Temporal, error) {
	result := t
	var err error
	if p.years != 0 {
		if result, err = result.Add(p.years, UnitYears); err != nil {
			return nil, err
		}
	}
	if p.months != 0 {
		if result, err = result.Add(p.months, UnitMonths); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SubtractFrom removes the period from a temporal.
func (p Period) SubtractFrom(t Temporal) (Temporal, error) {
	return p.Negated().AddTo(t)
}

// String returns the ISO-8601 representation, e.g. "P1Y2M". The zero
// period renders as "P0M".
func (p Period) String() string {
	if p.IsZero() {
		return "P0M"
	}
	s := "P"
	if p.years != 0 {
		s += fmt.Sprintf("%dY", p.years)
	}
	if p.months != 0 {
		s += fmt.Sprintf("%dM", p.months)
	}
	return s
}

// MarshalJSON implements json.Marshaler.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Period) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Period) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Period) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
