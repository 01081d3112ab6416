package formatter

import (
	"fmt"
	"math"
	"time"
)

// Layouts
const (
	layoutVerboseDate  = "January 2, 2006"
	layoutVerboseClock = "15:04"
	layoutCompact      = "02/01/06 15:04"
	layoutFull         = "02/01/2006, 15:04:05"
)

// VerboseDate - "July 4, 2025"
func VerboseDate(t time.Time) string {
	return format(t, layoutVerboseDate)
}

// VerboseClock - "18:20", пара к VerboseDate
func VerboseClock(t time.Time) string {
	return format(t, layoutVerboseClock)
}

// Compact - "04/07/25 18:20", 24-часовой формат
func Compact(t time.Time) string {
	return format(t, layoutCompact)
}

// Full - "04/07/2025, 18:20:00"
func Full(t time.Time) string {
	return format(t, layoutFull)
}

// PlaybackTime форматирует позицию видео в секундах как MM:SS
func PlaybackTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
