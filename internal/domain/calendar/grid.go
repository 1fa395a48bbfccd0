package calendar

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

// Grid geometry. Rows run from StartHour to EndHour inclusive.
const (
	StartHour  = 8
	EndHour    = 21
	HourHeight = 48

	CustomerMinHeight = 30
	ServiceMinHeight  = 50
)

type LayerKind string

const (
	LayerAvailability   LayerKind = "availability"
	LayerUnavailability LayerKind = "unavailability"
	LayerBooked         LayerKind = "booked"
	LayerAppointment    LayerKind = "appointment"
)

// Z returns the stacking order of a layer kind; higher paints on top.
func (k LayerKind) Z() int {
	switch k {
	case LayerAvailability:
		return 1
	case LayerUnavailability:
		return 2
	case LayerBooked:
		return 3
	case LayerAppointment:
		return 4
	}
	return 0
}

type Layer struct {
	Kind   LayerKind `json:"kind"`
	Z      int       `json:"z"`
	Top    float64   `json:"top"`
	Height float64   `json:"height"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Block  *Block    `json:"block,omitempty"`
}

// Block is the clickable appointment card.
type Block struct {
	AppointmentID int64           `json:"appointment_id"`
	Status        schedule.Status `json:"status"`
	TimeRange     string          `json:"time_range"`
	Customer      string          `json:"customer,omitempty"`
	Service       string          `json:"service,omitempty"`
	ShowCustomer  bool            `json:"show_customer"`
	ShowService   bool            `json:"show_service"`
}

type Column struct {
	Date   time.Time `json:"date"`
	Key    string    `json:"key"`
	Layers []Layer   `json:"layers"`
}

type HourLabel struct {
	Hour  int     `json:"hour"`
	Label string  `json:"label"`
	Top   float64 `json:"top"`
}

// Height is the full pixel height of a column.
func Height() float64 {
	return float64(EndHour-StartHour+1) * HourHeight
}

// Offset converts a wall-clock string to pixels below the top of the grid.
// Times before StartHour come out negative.
func Offset(clock string) (float64, error) {
	m, err := schedule.Minutes(clock)
	if err != nil {
		return 0, err
	}
	return float64(m-StartHour*60) / 60 * HourHeight, nil
}

func HourLabels() []HourLabel {
	out := make([]HourLabel, 0, EndHour-StartHour+1)
	for h := StartHour; h <= EndHour; h++ {
		out = append(out, HourLabel{
			Hour:  h,
			Label: formatHour(h),
			Top:   float64(h-StartHour) * HourHeight,
		})
	}
	return out
}

func formatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

func band(kind LayerKind, start, end string) (Layer, bool) {
	top, err := Offset(start)
	if err != nil {
		return Layer{}, false
	}
	bottom, err := Offset(end)
	if err != nil || bottom <= top {
		return Layer{}, false
	}
	return Layer{
		Kind:   kind,
		Z:      kind.Z(),
		Top:    top,
		Height: bottom - top,
		Start:  schedule.FormatClock12(start),
		End:    schedule.FormatClock12(end),
	}, true
}

// LayoutDay builds one column, back to front. day may be nil when the
// backend sent nothing for the date. Appointments on other dates, cancelled
// ones, and any with unreadable times are left out.
func LayoutDay(date time.Time, day *models.ScheduleDay, appts []schedule.Appointment) Column {
	col := Column{
		Date:   timezone.StartOfDay(date),
		Key:    schedule.DateKey(date),
		Layers: []Layer{},
	}

	if day != nil {
		if day.Availability != nil {
			if l, ok := band(LayerAvailability, day.Availability.StartTime, day.Availability.EndTime); ok {
				col.Layers = append(col.Layers, l)
			}
		}
		for _, u := range day.Unavailability {
			if l, ok := band(LayerUnavailability, u.StartTime, u.EndTime); ok {
				col.Layers = append(col.Layers, l)
			}
		}
	}

	var cards []Layer
	for _, a := range appts {
		if a.Status == schedule.StatusCanceled || !timezone.SameDay(date, a.Date) {
			continue
		}
		bg, ok := band(LayerBooked, a.ScheduledStart, a.ScheduledEnd)
		if !ok {
			continue
		}
		col.Layers = append(col.Layers, bg)

		card := bg
		card.Kind = LayerAppointment
		card.Z = LayerAppointment.Z()
		card.Block = &Block{
			AppointmentID: a.ID,
			Status:        a.Status,
			TimeRange:     a.StartTime + " - " + a.EndTime,
			ShowCustomer:  card.Height > CustomerMinHeight,
			ShowService:   card.Height > ServiceMinHeight,
		}
		if card.Block.ShowCustomer {
			card.Block.Customer = a.Customer
		}
		if card.Block.ShowService {
			card.Block.Service = a.Service
		}
		cards = append(cards, card)
	}

	col.Layers = append(col.Layers, cards...)
	return col
}

// LayoutWeek lays out the seven days starting at the Sunday of weekStart.
func LayoutWeek(weekStart time.Time, s models.Schedule, appts []schedule.Appointment) []Column {
	start := timezone.SundayOf(weekStart)
	cols := make([]Column, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		var day *models.ScheduleDay
		if d, ok := s[schedule.DateKey(date)]; ok {
			day = &d
		}
		cols = append(cols, LayoutDay(date, day, appts))
	}
	return cols
}
