package domain

import (
	"strings"
	"time"
)

var dateLayouts = []string{"1/2/2006", "1-2-2006", "2006-01-02"}

// ParseDate accepts M/D/YYYY, M-D-YYYY and YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewValidationError("invalid date " + `"` + s + `"`)
}
