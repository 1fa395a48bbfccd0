package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

const FallbackServiceLabel = "Service"

type View string

const (
	ViewDay  View = "day"
	ViewWeek View = "week"
)

func (v View) Valid() bool {
	return v == ViewDay || v == ViewWeek
}

type Appointment struct {
	ID         int64           `json:"id"`
	Date       time.Time       `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Customer   string          `json:"customer"`
	Service    string          `json:"service"`
	Duration   int             `json:"duration"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     Status          `json:"status"`
	Phone      string          `json:"phone,omitempty"`

	// Raw wall-clock values, kept for layout.
	ScheduledStart string `json:"scheduled_start"`
	ScheduledEnd   string `json:"scheduled_end"`
}

// Filter selects the appointments of the active view. For ViewWeek the
// reference is normalized to its Sunday.
type Filter struct {
	View      View
	Reference time.Time
}

func (f Filter) Contains(date time.Time) bool {
	switch f.View {
	case ViewWeek:
		start := timezone.SundayOf(f.Reference)
		end := start.AddDate(0, 0, 6)
		day := timezone.StartOfDay(date.In(start.Location()))
		return !day.Before(start) && !day.After(end)
	default:
		return timezone.SameDay(f.Reference, date)
	}
}

// DatedDay is a schedule entry with its key already parsed.
type DatedDay struct {
	Key  string
	Date time.Time
	Day  models.ScheduleDay
}

// Days parses the keys of s, dropping (and logging) any that are not
// valid "MM-DD-YYYY" dates. The result is in calendar order.
func Days(s models.Schedule, loc *time.Location, log *zap.Logger) []DatedDay {
	log = logger.OrNop(log)

	out := make([]DatedDay, 0, len(s))
	for key, day := range s {
		date, err := ParseDateKey(key, loc)
		if err != nil {
			log.Warn("skipping unparseable schedule date", zap.String("key", key), zap.Error(err))
			continue
		}
		out = append(out, DatedDay{Key: key, Date: date, Day: day})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Transform flattens a schedule into appointments visible in f. Status is
// derived against now. It never fails: bad keys are skipped.
func Transform(s models.Schedule, f Filter, now time.Time, loc *time.Location, log *zap.Logger) []Appointment {
	out := []Appointment{}
	for _, d := range Days(s, loc, log) {
		if !f.Contains(d.Date) {
			continue
		}
		for _, b := range d.Day.Bookings {
			out = append(out, BuildAppointment(b, d.Date, now))
		}
	}
	return out
}

func BuildAppointment(b models.Booking, date time.Time, now time.Time) Appointment {
	service, duration, price := summarizeServices(b)

	return Appointment{
		ID:             b.BookingID,
		Date:           date,
		StartTime:      FormatClock12(b.ScheduledStart),
		EndTime:        FormatClock12(b.ScheduledEnd),
		Customer:       b.Customer.Name,
		Service:        service,
		Duration:       duration,
		TotalPrice:     price,
		Status:         DeriveStatus(b, date, now),
		Phone:          b.Customer.Phone,
		ScheduledStart: b.ScheduledStart,
		ScheduledEnd:   b.ScheduledEnd,
	}
}

func summarizeServices(b models.Booking) (string, int, decimal.Decimal) {
	if len(b.Services) > 0 {
		names := make([]string, 0, len(b.Services))
		duration := 0
		price := decimal.Zero
		for _, s := range b.Services {
			if s.ServiceName != "" {
				names = append(names, s.ServiceName)
			}
			duration += s.DurationMinutes
			price = price.Add(s.Price)
		}
		label := strings.Join(names, ", ")
		if label == "" {
			label = FallbackServiceLabel
		}
		return label, duration, price
	}

	label := b.ServiceName
	if label == "" {
		label = FallbackServiceLabel
	}
	duration := 0
	if b.TotalDurationMinutes != nil {
		duration = *b.TotalDurationMinutes
	}
	price := decimal.Zero
	if b.TotalPrice != nil {
		price = *b.TotalPrice
	}
	return label, duration, price
}

// Cancelled returns the appointments kept off the grid.
func Cancelled(appts []Appointment) []Appointment {
	out := []Appointment{}
	for _, a := range appts {
		if a.Status == StatusCanceled {
			out = append(out, a)
		}
	}
	return out
}
