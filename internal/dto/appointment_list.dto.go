package dto

import (
	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
)

// AppointmentListDTO is the slim row used by list views.
type AppointmentListDTO struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      string          `json:"end_time"`
	Status       schedule.Status `json:"status"`
	CustomerName string          `json:"customer_name"`
	ServiceName  string          `json:"service_name"`
}

func AppointmentList(appts []schedule.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appts))
	for _, a := range appts {
		out = append(out, AppointmentListDTO{
			ID:           a.ID,
			Date:         schedule.DateKey(a.Date),
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
			Status:       a.Status,
			CustomerName: a.Customer,
			ServiceName:  a.Service,
		})
	}
	return out
}
