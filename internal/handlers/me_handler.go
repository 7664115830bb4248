package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

// GetMe returns the caller's profile, including whether a free-service
// credit is available to book with.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.repo.GetUser(c.Request.Context(), middleware.UserID(c))
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"phone":           user.Phone,
			"role":            user.Role,
			"location_id":     user.LocationID,
			"loyalty_stamps":  user.LoyaltyStamps,
			"has_free_credit": user.HasFreeCredit,
		},
	})
}
