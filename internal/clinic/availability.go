package clinic

import (
	"strings"
	"time"
)

// TimingChoice is the coarse scheduling window the patient picked. It shifts
// the calendar dates attached to day options but not which weekdays are open.
type TimingChoice int

const (
	TimingThisWeek TimingChoice = iota
	TimingNextWeek
)

// ParseTiming maps the patient's timing answer ("this week", "timing_next_week",
// free text containing either phrase) onto a TimingChoice.
func ParseTiming(raw string) (TimingChoice, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	switch {
	case strings.Contains(s, "next week"):
		return TimingNextWeek, true
	case strings.Contains(s, "this week"):
		return TimingThisWeek, true
	}
	return TimingThisWeek, false
}

func (t TimingChoice) offsetDays() int {
	if t == TimingNextWeek {
		return 7
	}
	return 0
}

// String returns the canonical slot value stored in booking data.
func (t TimingChoice) String() string {
	if t == TimingNextWeek {
		return "next week"
	}
	return "this week"
}

// DayOption is one open weekday at a location, with the concrete calendar
// date of its next occurrence inside the requested window.
type DayOption struct {
	Weekday time.Weekday
	Name    string    // "Monday"
	Date    time.Time // next occurrence after the timing offset
	Hours   string    // display hours, e.g. "8:00 AM - 5:00 PM"
}

// TimeWindowOption is a bookable part of an open day.
type TimeWindowOption struct {
	Label string // "Morning"
	Value string // "morning"
	Hours string // display range, e.g. "8:00 AM - 12:00 PM"
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// fallbackHours is used when a location carries no hours table at all.
// A table that is present but all-closed yields no options instead.
const fallbackHours = "9:00 AM - 5:00 PM"

// ResolveDays computes the open weekdays for a location, ordered
// Monday through Sunday, each carrying the date of its next occurrence after
// now plus the timing offset. A location with an hours table where every day
// is closed yields an empty slice; the caller owns the no-availability reply.
func ResolveDays(loc Location, timing TimingChoice, now time.Time) []DayOption {
	open := openDays(loc)
	base := now.AddDate(0, 0, timing.offsetDays())

	options := make([]DayOption, 0, len(open))
	for _, wd := range weekdayOrder {
		hours, ok := open[wd]
		if !ok {
			continue
		}
		options = append(options, DayOption{
			Weekday: wd,
			Name:    wd.String(),
			Date:    nextOccurrence(base, wd),
			Hours:   hours,
		})
	}
	return options
}

// ResolveHours returns the time-of-day windows for one weekday at a location.
// Closed or unknown days yield no windows.
func ResolveHours(loc Location, day time.Weekday) []TimeWindowOption {
	hours, ok := openDays(loc)[day]
	if !ok {
		return nil
	}
	return splitWindows(hours)
}

// openDays parses the weekday_text table into open weekday -> hours string.
// Closed days are excluded. Missing tables fall back to weekday business hours.
func openDays(loc Location) map[time.Weekday]string {
	open := make(map[time.Weekday]string)
	if loc.OpeningHours == nil || len(loc.OpeningHours.WeekdayText) == 0 {
		for _, wd := range weekdayOrder[:5] {
			open[wd] = fallbackHours
		}
		return open
	}
	for _, line := range loc.OpeningHours.WeekdayText {
		name, hours, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		wd, ok := parseWeekday(strings.TrimSpace(name))
		if !ok {
			continue
		}
		hours = strings.TrimSpace(hours)
		lower := strings.ToLower(hours)
		if hours == "" || strings.Contains(lower, "closed") || strings.Contains(lower, "unavailable") {
			continue
		}
		open[wd] = normalizeDash(hours)
	}
	return open
}

// nextOccurrence returns the first occurrence of wd strictly after base.
func nextOccurrence(base time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(base.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := base.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// splitWindows divides a display range like "8:00 AM - 5:00 PM" at noon into
// morning/afternoon windows. Ranges that cannot be parsed produce both
// windows so the patient is never blocked on formatting quirks.
func splitWindows(hours string) []TimeWindowOption {
	openAt, closeAt, ok := parseRange(hours)
	if !ok {
		return []TimeWindowOption{
			{Label: "Morning", Value: "morning", Hours: hours},
			{Label: "Afternoon", Value: "afternoon", Hours: hours},
		}
	}

	noon := 12 * 60
	var windows []TimeWindowOption
	if openAt < noon {
		end := closeAt
		if end > noon {
			end = noon
		}
		windows = append(windows, TimeWindowOption{
			Label: "Morning",
			Value: "morning",
			Hours: formatClock(openAt) + " - " + formatClock(end),
		})
	}
	if closeAt > noon {
		start := openAt
		if start < noon {
			start = noon
		}
		windows = append(windows, TimeWindowOption{
			Label: "Afternoon",
			Value: "afternoon",
			Hours: formatClock(start) + " - " + formatClock(closeAt),
		})
	}
	return windows
}

// parseRange extracts open/close minutes-of-day from "8:00 AM - 5:00 PM".
func parseRange(hours string) (openAt, closeAt int, ok bool) {
	parts := strings.SplitN(normalizeDash(hours), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	openAt, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	closeAt, ok = parseClock(parts[1])
	if !ok || closeAt <= openAt {
		return 0, 0, false
	}
	return openAt, closeAt, true
}

func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"3:04 PM", "3:04PM", "3 PM", "3PM", "15:04"} {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

func formatClock(minutes int) string {
	t := time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// normalizeDash replaces the en/em dashes places data uses with a plain hyphen.
func normalizeDash(s string) string {
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	return s
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(name) {
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue", "tues":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu", "thur", "thurs":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	case "sunday", "sun":
		return time.Sunday, true
	}
	return time.Sunday, false
}
