package counselor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"quadralink/models"
)

// rangePattern matches a zero-padded 24-hour "HH:MM-HH:MM" range.
var rangePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

// ValidateAvailability checks the invariants the booking engine assumes:
// known English weekday keys, well-formed same-day ranges with start before
// end, and no overlap between ranges on the same day. Zero-padded "HH:MM"
// strings order lexicographically, so plain string comparison suffices.
func ValidateAvailability(availability map[string][]string) error {
	for day, ranges := range availability {
		if !isWeekday(day) {
			return &ValidationError{Message: fmt.Sprintf("unknown weekday %q", day)}
		}

		sorted := make([]string, len(ranges))
		copy(sorted, ranges)
		sort.Strings(sorted)

		prevEnd := ""
		for _, r := range sorted {
			if !rangePattern.MatchString(r) {
				return &ValidationError{Message: fmt.Sprintf("malformed range %q for %s, want HH:MM-HH:MM", r, day)}
			}
			parts := strings.SplitN(r, "-", 2)
			start, end := parts[0], parts[1]
			if start >= end {
				return &ValidationError{Message: fmt.Sprintf("range %q for %s must start before it ends", r, day)}
			}
			if prevEnd != "" && start < prevEnd {
				return &ValidationError{Message: fmt.Sprintf("ranges overlap on %s around %s", day, start)}
			}
			prevEnd = end
		}
	}
	return nil
}

func isWeekday(day string) bool {
	for _, d := range models.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
