package dto

import (
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AppointmentDTO struct {
	ID             uint       `json:"id"`
	BarberID       uint       `json:"barber_id"`
	BarberName     string     `json:"barber_name,omitempty"`
	CustomerID     uint       `json:"customer_id"`
	ServiceID      uint       `json:"service_id"`
	ServiceName    string     `json:"service_name,omitempty"`
	LocationID     *uint      `json:"location_id,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        time.Time  `json:"end_time"`
	IsFree         bool       `json:"is_free"`
	WalkInName     *string    `json:"walkin_name,omitempty"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

// AppointmentListDTO is one row of a barber's own schedule.
type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsFree       bool      `json:"is_free"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
}

type WalkInSlotDTO struct {
	BarberID   uint      `json:"barber_id"`
	BarberName string    `json:"barber_name"`
	Slot       time.Time `json:"slot"`
	IsEarliest bool      `json:"is_earliest"`
}

func local(t time.Time) time.Time {
	return t.In(timezone.Location())
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:         ap.ID,
		BarberID:   ap.BarberID,
		CustomerID: ap.CustomerID,
		ServiceID:  ap.ServiceID,
		LocationID: ap.LocationID,
		StartTime:  local(ap.StartTime),
		EndTime:    local(ap.EndTime),
		IsFree:     ap.IsFree,
		WalkInName: ap.WalkInName,
	}
	if ap.Barber != nil {
		out.BarberName = ap.Barber.Name
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}
	if ap.ReminderSentAt != nil {
		sent := local(*ap.ReminderSentAt)
		out.ReminderSentAt = &sent
	}
	return out
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:        ap.ID,
		StartTime: local(ap.StartTime),
		EndTime:   local(ap.EndTime),
		IsFree:    ap.IsFree,
	}
	switch {
	case ap.WalkInName != nil:
		out.CustomerName = *ap.WalkInName
	case ap.Customer != nil:
		out.CustomerName = ap.Customer.Name
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}
	return out
}

func NewWalkInSlots(in []domain.BarberSlot) []WalkInSlotDTO {
	out := make([]WalkInSlotDTO, 0, len(in))
	for _, s := range in {
		out = append(out, WalkInSlotDTO{
			BarberID:   s.BarberID,
			BarberName: s.BarberName,
			Slot:       local(s.Slot),
			IsEarliest: s.IsEarliest,
		})
	}
	return out
}
