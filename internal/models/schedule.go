package models

import "github.com/shopspring/decimal"

// Interval is a same-day wall-clock span; both ends are "HH:MM:SS".
type Interval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleDay struct {
	Availability   *Interval  `json:"availability"`
	Unavailability []Interval `json:"unavailability"`
	Bookings       []Booking  `json:"bookings"`
}

// Schedule is keyed by "MM-DD-YYYY".
type Schedule map[string]ScheduleDay

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type BookingService struct {
	ServiceName     string          `json:"service_name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

type Booking struct {
	BookingID      int64            `json:"booking_id"`
	ScheduledStart string           `json:"scheduled_start"`
	ScheduledEnd   string           `json:"scheduled_end"`
	Customer       Customer         `json:"customer"`
	Services       []BookingService `json:"services"`
	Status         string           `json:"status"`

	// Aggregates sent when the services array is absent.
	ServiceName          string           `json:"service_name,omitempty"`
	TotalPrice           *decimal.Decimal `json:"total_price,omitempty"`
	TotalDurationMinutes *int             `json:"total_duration_minutes,omitempty"`
}
