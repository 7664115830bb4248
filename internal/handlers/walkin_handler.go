package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type WalkInHandler struct {
	search *ucAppointment.WalkInSearch
	create *ucAppointment.CreateWalkIn
}

func NewWalkInHandler(
	search *ucAppointment.WalkInSearch,
	create *ucAppointment.CreateWalkIn,
) *WalkInHandler {
	return &WalkInHandler{search: search, create: create}
}

type CreateWalkInRequest struct {
	Name      string `json:"name"`
	ServiceID uint   `json:"service_id" binding:"required"`
	BarberID  *uint  `json:"barber_id"`
	StartTime string `json:"start_time"`
}

// Slots serves GET /api/walkin/slots?service_id=
func (h *WalkInHandler) Slots(c *gin.Context) {
	serviceID, err := parseID(c.Query("service_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required.")
		return
	}

	slots, err := h.search.FindPerBarberEarliest(c.Request.Context(), serviceID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, dto.NewWalkInSlots(slots))
}

func (h *WalkInHandler) Create(c *gin.Context) {
	var req CreateWalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := ucAppointment.CreateWalkInInput{
		CustomerID: middleware.UserID(c),
		Name:       req.Name,
		ServiceID:  req.ServiceID,
		BarberID:   req.BarberID,
	}

	if req.StartTime != "" {
		start, err := parseInstant(req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_time", "start_time must be RFC 3339 or YYYY-MM-DD HH:MM.")
			return
		}
		in.StartTime = &start
	}

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

