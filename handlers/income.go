package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendsense/spendsense-api/middleware"
	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/services"
)

type IncomeHandler struct {
	Income *services.IncomeService
}

func NewIncomeHandler(income *services.IncomeService) *IncomeHandler {
	return &IncomeHandler{Income: income}
}

func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"income": []models.Income{}})
		return
	}

	income, err := h.Income.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

func (h *IncomeHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.AddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if !models.ValidIncomeSource(req.Source) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown income source"})
		return
	}

	income, err := h.Income.Add(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, income)
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Income.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
