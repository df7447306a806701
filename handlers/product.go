package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendsense/spendsense-api/middleware"
	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/services"
	"github.com/spendsense/spendsense-api/utils"
)

type ProductHandler struct {
	Products *services.ProductService
	Lookup   *services.LookupService
}

func NewProductHandler(products *services.ProductService, lookup *services.LookupService) *ProductHandler {
	return &ProductHandler{Products: products, Lookup: lookup}
}

// LookupBarcode resolves a scanned barcode: the user's saved products first,
// the public catalog second. A miss from both is a 200 with a null product,
// not an error; the scanning UI then lets the user fill details in manually.
func (h *ProductHandler) LookupBarcode(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	barcode := c.Query("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode is required"})
		return
	}
	if !utils.ValidateBarcode(barcode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barcode format"})
		return
	}

	result, err := h.Lookup.Lookup(c.Request.Context(), userID, barcode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Save writes a confirmed product into the user's cache so future scans of
// the same barcode resolve locally.
func (h *ProductHandler) Save(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !utils.ValidateBarcode(req.Barcode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barcode format"})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	if err := h.Products.Save(c.Request.Context(), userID, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"products": []models.Product{}})
		return
	}

	products, err := h.Products.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Products.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
