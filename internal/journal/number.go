package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry numbers are part of the persisted record and consumed by other
// systems, so the format is fixed: "JE-<year>-<6-digit sequence>".

// FormatNumber returns an entry number like "JE-2025-000123".
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("JE-%04d-%06d", year, seq)
}

// ParseNumber parses "JE-2025-000123" into year and sequence.
func ParseNumber(number string) (year, seq int, err error) {
	parts := strings.SplitN(number, "-", 3)
	if len(parts) != 3 || parts[0] != "JE" || len(parts[1]) != 4 || len(parts[2]) != 6 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return year, seq, nil
}
