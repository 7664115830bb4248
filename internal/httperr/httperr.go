package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

var messages = map[string]string{
	"slot_taken":               "This slot was just taken. Refresh and pick another one.",
	"slot_unavailable":         "This slot is no longer available. Refresh and pick another one.",
	"no_staff_available":       "Fully booked: no staff member is available for this time.",
	"no_walkin_slot":           "Fully booked: no walk-in slot is left for today.",
	"service_not_found":        "Service not found.",
	"barber_not_found":         "Barber not found.",
	"appointment_not_found":    "Appointment not found.",
	"blocked_time_not_found":   "Blocked time not found.",
	"no_loyalty_credit":        "No free service credit available.",
	"slot_in_past":             "The selected time is in the past.",
	"invalid_service_duration": "Service has no valid duration.",
	"location_required":        "A location is required when booking any barber.",
	"missing_start_time":       "A start time is required.",
	"walkin_not_today":         "Walk-ins can only be booked for today.",
	"barber_id_required":       "Pick a barber when choosing a start time.",
	"start_after_end":          "Start must be before end.",
	"duplicate_weekday":        "Each weekday may appear only once.",
}

func messageFor(code, fallback string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return fallback
}

// FromError writes the response for an error returned by a use case.
// Business errors map to client statuses, everything else is a 500.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Internal error.")
		return
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, messageFor(be.Code, "Not found."))
	case KindConflict, KindNoCandidate:
		Conflict(c, be.Code, messageFor(be.Code, "Conflict."))
	default:
		BadRequest(c, be.Code, messageFor(be.Code, "Invalid request."))
	}
}
