// Package filterengine filters file metadata records by name pattern and by
// creation/modification/access date ranges, and orchestrates the scans that
// produce those records.
package filterengine

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/joe/filter-files/pkg/provider"
)

// ErrInvalidPattern reports a name pattern that is not a valid regular
// expression. It is returned by Compile before any record is examined.
var ErrInvalidPattern = errors.New("invalid name pattern")

// DateRange is an inclusive calendar-day interval. Either bound may be nil,
// leaving that side unbounded. Bounds are interpreted as whole days: the
// lower bound starts at 00:00:00.000 and the upper bound ends at
// 23:59:59.999999, in the bound's own location.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether the range has no bounds.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// contains reports whether ts falls inside the range. An unbounded range
// accepts everything. A zero timestamp cannot satisfy a bounded range: a
// record without that timestamp is excluded from this sub-filter only.
func (r DateRange) contains(ts time.Time) bool {
	if r.IsZero() {
		return true
	}

	if ts.IsZero() {
		return false
	}

	if r.From != nil && ts.Before(dayStart(*r.From)) {
		return false
	}

	if r.To != nil && ts.After(dayEnd(*r.To)) {
		return false
	}

	return true
}

// dayStart returns midnight at the start of t's calendar day.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// dayEnd returns the last representable microsecond of t's calendar day,
// 23:59:59.999999.
func dayEnd(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Microsecond)
}

// Spec is the set of user-supplied predicates applied conjunctively to a
// record sequence. A zero Spec is the identity filter.
type Spec struct {
	// NamePattern is a case-insensitive regular expression searched for
	// (not anchored) in the final path component of each record.
	NamePattern string

	// Created, Modified, and Accessed each constrain the corresponding
	// record timestamp to an inclusive day interval.
	Created  DateRange
	Modified DateRange
	Accessed DateRange
}

// IsEmpty reports whether the spec constrains anything at all.
func (s Spec) IsEmpty() bool {
	return s.NamePattern == "" && s.Created.IsZero() && s.Modified.IsZero() && s.Accessed.IsZero()
}

// Filter is a compiled Spec, ready to apply to record sequences.
type Filter struct {
	spec        Spec
	namePattern *regexp.Regexp
}

// Compile validates the spec and compiles its name pattern.
// A malformed pattern fails here, wrapping ErrInvalidPattern, so callers can
// reject bad input before any records are scanned.
func Compile(spec Spec) (*Filter, error) {
	filter := &Filter{spec: spec}

	if spec.NamePattern != "" {
		pattern, err := regexp.Compile("(?i)" + spec.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		filter.namePattern = pattern
	}

	return filter, nil
}

// Apply returns the records satisfying every predicate of the spec, in their
// original relative order. Pure function: the input slice is never modified.
func (f *Filter) Apply(records []provider.Record) []provider.Record {
	matched := make([]provider.Record, 0, len(records))

	for _, record := range records {
		if f.matches(record) {
			matched = append(matched, record)
		}
	}

	return matched
}

// matches evaluates the predicates field by field.
func (f *Filter) matches(record provider.Record) bool {
	if f.namePattern != nil && !f.namePattern.MatchString(record.Name()) {
		return false
	}

	return f.spec.Created.contains(record.Created) &&
		f.spec.Modified.contains(record.Modified) &&
		f.spec.Accessed.contains(record.Accessed)
}

// Apply compiles the spec and applies it in one step.
func Apply(records []provider.Record, spec Spec) ([]provider.Record, error) {
	filter, err := Compile(spec)
	if err != nil {
		return nil, err
	}

	return filter.Apply(records), nil
}
