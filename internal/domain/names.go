package domain

import (
	"fmt"
	"strings"
)

// MalformedNameError reports a raw roster entry that does not follow the
// "Last, First" shape the source export uses.
type MalformedNameError struct {
	Raw string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed roster name %q: want exactly one comma between last and first name", e.Raw)
}

// CountMismatchError reports a normalized roster whose size differs from the
// caller-supplied expectation.
type CountMismatchError struct {
	Expected int
	Actual   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("roster count mismatch: expected %d students, got %d", e.Expected, e.Actual)
}

// ParseRosterName converts a raw "Last, First" entry into "First Last"
// display form. Both components are trimmed and internal whitespace runs
// are collapsed.
func ParseRosterName(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return "", &MalformedNameError{Raw: raw}
	}
	last := NormalizeHumanName(parts[0])
	first := NormalizeHumanName(parts[1])
	if last == "" || first == "" {
		return "", &MalformedNameError{Raw: raw}
	}
	return first + " " + last, nil
}

// NormalizeRoster converts raw "Last, First" entries into display form,
// preserving relative order, and validates the result against the expected
// count. Count validation is the only roster-level validation performed.
func NormalizeRoster(raw []string, expected int) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		name, err := ParseRosterName(r)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if len(out) != expected {
		return nil, &CountMismatchError{Expected: expected, Actual: len(out)}
	}
	return out, nil
}
