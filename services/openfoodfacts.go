package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spendsense/spendsense-api/models"
)

const offFields = "code,product_name,brands,categories_tags_en,image_url"

type OpenFoodFactsClient struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

func NewOpenFoodFactsClient() *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		BaseURL:   "https://world.openfoodfacts.org",
		UserAgent: "SpendSense/1.0 (https://spendsense.com)",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
		ImageURL    string `json:"image_url"`
	} `json:"product"`
}

// Fetch looks a barcode up in the public catalog. A nil product with a nil
// error means the catalog answered but does not know the barcode; transport
// and decode failures come back as errors for the pipeline to absorb.
func (c *OpenFoodFactsClient) Fetch(ctx context.Context, barcode string) (*models.LookedUpProduct, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s?fields=%s", c.BaseURL, barcode, offFields)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var data offResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	// A 200 response can still mean "not found"; the payload carries its own
	// status discriminator.
	if data.Status != 1 {
		return nil, nil
	}

	name := data.Product.ProductName
	if name == "" {
		name = "Unknown Product"
	}

	return &models.LookedUpProduct{
		Barcode:  barcode,
		Name:     name,
		Price:    nil, // the catalog never supplies a price
		Category: string(models.CategoryFood),
	}, nil
}
