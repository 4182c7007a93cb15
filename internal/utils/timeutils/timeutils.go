package timeutils

import (
	"time"
)

// FormatLocal converts a timestamp into a readable format in the local
// timezone.
func FormatLocal(t time.Time) string {
	outputLayout := "2 January 2006 3:04:05 PM MST"
	return t.Local().Format(outputLayout)
}
