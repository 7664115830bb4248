package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// local wall-clock form accepted next to RFC 3339
const localDateTimeLayout = "2006-01-02 15:04"

var errEmpty = errors.New("empty value")

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmpty
	}
	return timezone.ParseDate(s)
}

// parseInstant reads an RFC 3339 timestamp, or "YYYY-MM-DD HH:MM" in the
// business timezone.
func parseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmpty
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeLayout, s, timezone.Location())
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(v), nil
}

// fail writes the response for a use-case error. Unexpected errors are
// attached to the context so the request logger records them.
func fail(c *gin.Context, err error) {
	if httperr.KindOf(err) == 0 {
		_ = c.Error(err)
	}
	httperr.FromError(c, err)
}
