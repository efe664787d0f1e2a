package cli

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// validateDate checks a YYYY-MM-DD command-line argument.
func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// formatMTBF renders an MTBF value, nil meaning not enough failures to
// bound an interval.
func formatMTBF(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f days", *v)
}
