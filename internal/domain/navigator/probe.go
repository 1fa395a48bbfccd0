package navigator

import (
	"time"

	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-console/internal/models"
)

// HorizonProbe answers whether the week starting at weekStart has anything
// to show. known is false when the answer is not available yet.
type HorizonProbe interface {
	WeekHasData(weekStart time.Time) (hasData bool, known bool)
}

// ScheduleProbe answers from an already-fetched schedule. A nil schedule
// means nothing has been fetched yet.
type ScheduleProbe struct {
	Schedule models.Schedule
}

func (p ScheduleProbe) WeekHasData(weekStart time.Time) (bool, bool) {
	if p.Schedule == nil {
		return false, false
	}
	for i := 0; i < 7; i++ {
		day, ok := p.Schedule[schedule.DateKey(weekStart.AddDate(0, 0, i))]
		if !ok {
			continue
		}
		if day.Availability != nil || len(day.Bookings) > 0 {
			return true, true
		}
	}
	return false, true
}

// OptimisticProbe never knows; navigation forward is always allowed.
type OptimisticProbe struct{}

func (OptimisticProbe) WeekHasData(time.Time) (bool, bool) {
	return false, false
}
