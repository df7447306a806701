package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendsense/spendsense-api/middleware"
	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/services"
)

type ExpenseHandler struct {
	Expenses *services.ExpenseService
}

func NewExpenseHandler(expenses *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		// Read path: unauthenticated callers see an empty list, not an error.
		c.JSON(http.StatusOK, gin.H{"expenses": []models.Expense{}})
		return
	}

	expenses, err := h.Expenses.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (h *ExpenseHandler) Add(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	expense, err := h.Expenses.Add(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Expenses.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
