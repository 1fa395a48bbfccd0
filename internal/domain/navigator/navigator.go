package navigator

import (
	"time"

	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

// DayWindowDays is how far ahead of today day view may go.
const DayWindowDays = 7

// Navigator tracks the reference point of the day and week views and
// decides which steps are allowed. It is not safe for concurrent use.
type Navigator struct {
	now      time.Time
	view     schedule.View
	selected time.Time
	week     time.Time
	probe    HorizonProbe
}

func New(now time.Time, probe HorizonProbe) *Navigator {
	if probe == nil {
		probe = OptimisticProbe{}
	}
	n := &Navigator{
		now:   now,
		view:  schedule.ViewDay,
		probe: probe,
	}
	n.selected = n.today()
	n.week = n.CurrentWeekStart()
	return n
}

func (n *Navigator) today() time.Time {
	return timezone.StartOfDay(n.now)
}

// SetNow re-anchors the wall clock. Call it before each fetch. Reference
// points that fell outside the new window are pulled back into it.
func (n *Navigator) SetNow(now time.Time) {
	n.now = now

	start, end := n.DayWindow()
	if n.selected.Before(start) {
		n.selected = start
	} else if n.selected.After(end) {
		n.selected = end
	}

	current := n.CurrentWeekStart()
	if n.week.Before(current) || n.week.After(current.AddDate(0, 0, 7)) {
		n.week = current
	}
}

func (n *Navigator) SetProbe(p HorizonProbe) {
	if p == nil {
		p = OptimisticProbe{}
	}
	n.probe = p
}

func (n *Navigator) View() schedule.View     { return n.view }
func (n *Navigator) SelectedDate() time.Time { return n.selected }
func (n *Navigator) WeekStart() time.Time    { return n.week }

// SetView switches mode and resets that mode's reference point.
func (n *Navigator) SetView(v schedule.View) {
	switch v {
	case schedule.ViewWeek:
		n.view = schedule.ViewWeek
		n.week = n.CurrentWeekStart()
	default:
		n.view = schedule.ViewDay
		n.selected = n.today()
	}
}

// Filter is the transformer filter for the active view.
func (n *Navigator) Filter() schedule.Filter {
	if n.view == schedule.ViewWeek {
		return schedule.Filter{View: schedule.ViewWeek, Reference: n.week}
	}
	return schedule.Filter{View: schedule.ViewDay, Reference: n.selected}
}

// DayWindow is [today, today+7], anchored to the wall clock rather than
// the selected date.
func (n *Navigator) DayWindow() (time.Time, time.Time) {
	start := n.today()
	return start, start.AddDate(0, 0, DayWindowDays)
}

func (n *Navigator) CurrentWeekStart() time.Time {
	return timezone.SundayOf(n.now)
}

// FetchRange is the inclusive date range to request for the active view.
// Week view asks for the current and the following week in one call.
func (n *Navigator) FetchRange() (time.Time, time.Time) {
	if n.view == schedule.ViewWeek {
		start := n.CurrentWeekStart()
		return start, start.AddDate(0, 0, 13)
	}
	return n.DayWindow()
}

func (n *Navigator) CanNavigatePrevious() bool {
	if n.view == schedule.ViewWeek {
		return n.week.After(n.CurrentWeekStart())
	}
	start, _ := n.DayWindow()
	return n.selected.After(start)
}

func (n *Navigator) CanNavigateNext() bool {
	if n.view == schedule.ViewWeek {
		current := n.CurrentWeekStart()
		if !n.week.Equal(current) {
			return false
		}
		hasData, known := n.probe.WeekHasData(current.AddDate(0, 0, 7))
		return !known || hasData
	}
	_, end := n.DayWindow()
	return n.selected.Before(end)
}

// Previous steps back one day or one week. It reports false, and changes
// nothing, when the step is not allowed.
func (n *Navigator) Previous() bool {
	if !n.CanNavigatePrevious() {
		return false
	}
	if n.view == schedule.ViewWeek {
		n.week = n.week.AddDate(0, 0, -7)
	} else {
		n.selected = n.selected.AddDate(0, 0, -1)
	}
	return true
}

func (n *Navigator) Next() bool {
	if !n.CanNavigateNext() {
		return false
	}
	if n.view == schedule.ViewWeek {
		n.week = n.week.AddDate(0, 0, 7)
	} else {
		n.selected = n.selected.AddDate(0, 0, 1)
	}
	return true
}
