package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	getAvailability *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(uc *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{getAvailability: uc}
}

type availabilityResponse struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

// Get serves GET /api/availability?date=&barber_id=&service_id=
func (h *AvailabilityHandler) Get(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	barberID, err := parseID(c.Query("barber_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id is required.")
		return
	}

	serviceID, err := parseID(c.Query("service_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id is required.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilityResponse{
		Date:  dateStr,
		Slots: slots,
	})
}
