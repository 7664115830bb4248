package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

type BlockedTimeHandler struct {
	uc *ucSchedule.BlockedTime
}

func NewBlockedTimeHandler(uc *ucSchedule.BlockedTime) *BlockedTimeHandler {
	return &BlockedTimeHandler{uc: uc}
}

type CreateBlockedTimeRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

// List serves GET /api/me/blocked-times?from=YYYY-MM-DD&to=YYYY-MM-DD, both
// days inclusive.
func (h *BlockedTimeHandler) List(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
		return
	}

	blocks, err := h.uc.List(c.Request.Context(), middleware.UserID(c), from, to.AddDate(0, 0, 1))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, blocks)
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseInstant(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Invalid start_time.")
		return
	}
	end, err := parseInstant(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Invalid end_time.")
		return
	}

	b, err := h.uc.Create(c.Request.Context(), ucSchedule.CreateBlockedTimeInput{
		BarberID:  middleware.UserID(c),
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid blocked time id.")
		return
	}

	if err := h.uc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		fail(c, err)
		return
	}

	httpresp.NoContent(c)
}
