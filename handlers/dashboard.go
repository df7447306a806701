package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendsense/spendsense-api/middleware"
	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		// Zero/empty defaults on the read path, never an error page.
		c.JSON(http.StatusOK, &models.DashboardSummary{
			RecentExpenses: []models.Expense{},
			RecentIncome:   []models.Income{},
		})
		return
	}

	summary, err := h.Dashboard.Summary(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
