package filterengine

import (
	"fmt"
	"time"
)

// DayLayout is the date format accepted for range bounds.
const DayLayout = "2006-01-02"

// Input is the raw, user-supplied form of a Spec: a free-text pattern plus
// from/to date strings for the three timestamp fields. Empty strings mean
// the field is unset.
type Input struct {
	Pattern      string
	CreatedFrom  string
	CreatedTo    string
	ModifiedFrom string
	ModifiedTo   string
	AccessedFrom string
	AccessedTo   string
}

// Spec parses the input into a Spec. Date parsing failures identify the
// offending field so the caller can point the user at it; the pattern itself
// is validated later by Compile.
func (in Input) Spec() (Spec, error) {
	spec := Spec{NamePattern: in.Pattern}

	fields := []struct {
		label  string
		value  string
		target **time.Time
	}{
		{"created from", in.CreatedFrom, &spec.Created.From},
		{"created to", in.CreatedTo, &spec.Created.To},
		{"modified from", in.ModifiedFrom, &spec.Modified.From},
		{"modified to", in.ModifiedTo, &spec.Modified.To},
		{"accessed from", in.AccessedFrom, &spec.Accessed.From},
		{"accessed to", in.AccessedTo, &spec.Accessed.To},
	}

	for _, field := range fields {
		parsed, err := ParseDay(field.value)
		if err != nil {
			return Spec{}, fmt.Errorf("%s: %w", field.label, err)
		}
		*field.target = parsed
	}

	return spec, nil
}

// ParseDay parses a YYYY-MM-DD date in the local time zone.
// An empty string parses to nil (no bound).
func ParseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.ParseInLocation(DayLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}

	return &parsed, nil
}
