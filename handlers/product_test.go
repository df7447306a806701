package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/services"
)

type stubFinder struct {
	product *models.Product
}

func (s *stubFinder) FindByBarcode(ctx context.Context, userID, barcode string) (*models.Product, error) {
	return s.product, nil
}

type stubCatalog struct{}

func (s *stubCatalog) Fetch(ctx context.Context, barcode string) (*models.LookedUpProduct, error) {
	return nil, nil
}

func newLookupRouter(finder *stubFinder, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	lookup := services.NewLookupService(finder, &stubCatalog{})
	handler := &ProductHandler{Lookup: lookup}

	router.GET("/products/lookup", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", "user-1")
		}
		handler.LookupBarcode(c)
	})
	return router
}

func TestLookupBarcodeReturnsCachedProduct(t *testing.T) {
	price := 25.50
	finder := &stubFinder{product: &models.Product{
		Barcode:  "12345678",
		Name:     "Instant Noodles",
		Price:    &price,
		Category: "food",
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/lookup?barcode=12345678", nil)
	newLookupRouter(finder, true).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.LookupResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, models.SourceUser, result.Source)
	require.NotNil(t, result.Product)
	assert.Equal(t, "Instant Noodles", result.Product.Name)
}

func TestLookupBarcodeMissIsNotAnError(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/lookup?barcode=12345678", nil)
	newLookupRouter(&stubFinder{}, true).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.LookupResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Nil(t, result.Product)
	assert.Equal(t, models.SourceNone, result.Source)

	// Both keys are present on a miss, each explicitly null.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Contains(t, raw, "source")
	assert.Equal(t, "null", string(raw["source"]))
	require.Contains(t, raw, "product")
	assert.Equal(t, "null", string(raw["product"]))
}

func TestLookupBarcodeValidation(t *testing.T) {
	router := newLookupRouter(&stubFinder{}, true)

	for _, query := range []string{"", "barcode=123", "barcode=notdigits"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/products/lookup?"+query, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestLookupBarcodeRequiresAuth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products/lookup?barcode=12345678", nil)
	newLookupRouter(&stubFinder{}, false).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
