package service

import (
	"fmt"
	"math"
)

// TimeRange is a same-day time window in minutes of day (0-1439).
// A range with Start >= End has no usable duration.
type TimeRange struct {
	Start int
	End   int
}

// Valid reports whether the range has positive duration.
func (r TimeRange) Valid() bool {
	return r.Start < r.End
}

// OverlapResult is the intersection of an event window and a volunteer
// availability window.
type OverlapResult struct {
	Start            int // minute of day
	End              int // minute of day
	Duration         int // minutes; 0 when there is no usable overlap
	TimeOverlapScore int // round(overlap/event duration * 50), 0-50
}

// HasOverlap reports whether a usable common window exists.
func (o OverlapResult) HasOverlap() bool {
	return o.Duration > 0
}

// Slot renders the overlap window as "H:MM AM/PM - H:MM AM/PM".
func (o OverlapResult) Slot() string {
	return FormatMinutes(o.Start) + " - " + FormatMinutes(o.End)
}

// ComputeOverlap intersects the event window with the volunteer window.
// The overlap score is the overlap share of the event duration scaled to a
// 0-50 range; the ratio cannot exceed 1 because the overlap is bounded by
// the event window.
func ComputeOverlap(event, volunteer TimeRange) OverlapResult {
	start := event.Start
	if volunteer.Start > start {
		start = volunteer.Start
	}
	end := event.End
	if volunteer.End < end {
		end = volunteer.End
	}

	if start >= end {
		return OverlapResult{}
	}

	duration := end - start
	eventDuration := event.End - event.Start
	score := int(math.Round(float64(duration) / float64(eventDuration) * 50))

	return OverlapResult{
		Start:            start,
		End:              end,
		Duration:         duration,
		TimeOverlapScore: score,
	}
}

// FormatDuration renders a minute count in human units. Units are always
// plural, matching what the review screen displays.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins == 0:
		return fmt.Sprintf("%d hours", hours)
	case hours == 0:
		return fmt.Sprintf("%d minutes", mins)
	default:
		return fmt.Sprintf("%d hours %d minutes", hours, mins)
	}
}
