package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	schedule *ucAppointment.ScheduleAppointment
	remove   *ucAppointment.DeleteAppointment
	list     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	schedule *ucAppointment.ScheduleAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		schedule: schedule,
		remove:   remove,
		list:     list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// barberRef is a barber id or the string "any".
type barberRef struct {
	ID  uint
	Any bool
}

func (b *barberRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(s, "any") {
			b.Any = true
			return nil
		}
		id, err := parseID(s)
		if err != nil {
			return err
		}
		b.ID = id
		return nil
	}
	return json.Unmarshal(data, &b.ID)
}

type CreateAppointmentRequest struct {
	ServiceID        uint       `json:"service_id" binding:"required"`
	StartTime        string     `json:"start_time" binding:"required"`
	BarberID         *barberRef `json:"barber_id" binding:"required"`
	LocationID       *uint      `json:"location_id"`
	UseLoyaltyCredit bool       `json:"use_loyalty_credit"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be RFC 3339 or YYYY-MM-DD HH:MM.")
		return
	}

	in := ucAppointment.ScheduleAppointmentInput{
		CustomerID:       middleware.UserID(c),
		ServiceID:        req.ServiceID,
		StartTime:        start,
		LocationID:       req.LocationID,
		UseLoyaltyCredit: req.UseLoyaltyCredit,
	}
	if !req.BarberID.Any {
		id := req.BarberID.ID
		in.BarberID = &id
	}

	ap, err := h.schedule.Execute(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), ucAppointment.DeleteAppointmentInput{
		ActorID:       middleware.UserID(c),
		ActorRole:     middleware.UserRole(c),
		AppointmentID: id,
	}); err != nil {
		fail(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LIST (own schedule)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	out, err := h.list.ByDate(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.list.ByMonth(c.Request.Context(), middleware.UserID(c), year, month)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, out)
}
