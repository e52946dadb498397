// Package timeutil formats entry dates for list, detail, and chart output.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdayJP = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// RelativeDate renders an entry date for the list view: time of day for
// today, 昨日 for yesterday, N日前 within a week, M/D otherwise.
func RelativeDate(at, now time.Time) string {
	at = at.Local()
	now = now.Local()

	atDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(nowDay.Sub(atDay).Hours() / 24)

	switch {
	case days <= 0:
		return at.Format("15:04")
	case days == 1:
		return "昨日"
	case days < 7:
		return fmt.Sprintf("%d日前", days)
	default:
		return AxisLabel(at)
	}
}

// FullDate renders the detail-view date: year, month, day, weekday, time.
func FullDate(at time.Time) string {
	at = at.Local()
	return fmt.Sprintf("%d年%d月%d日(%s) %s",
		at.Year(), int(at.Month()), at.Day(), weekdayJP[at.Weekday()], at.Format("15:04"))
}

// AxisLabel renders the chart axis label, M/D.
func AxisLabel(at time.Time) string {
	at = at.Local()
	return fmt.Sprintf("%d/%d", int(at.Month()), at.Day())
}

var windowPattern = regexp.MustCompile(`^(\d+)([dwm])`)

// ParseWindow parses a chart window like "2w", "10d", or "1m" (months are
// 30 days) into a duration. Empty input means no window.
func ParseWindow(input string) (time.Duration, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, nil
	}

	total := time.Duration(0)
	remaining := trimmed
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", remaining)
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		switch matches[2] {
		case "d":
			total += time.Duration(value) * 24 * time.Hour
		case "w":
			total += time.Duration(value) * 7 * 24 * time.Hour
		case "m":
			total += time.Duration(value) * 30 * 24 * time.Hour
		}
		remaining = remaining[len(matches[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}
