package services

import (
	"context"
	"fmt"

	"github.com/spendsense/spendsense-api/models"
	"github.com/spendsense/spendsense-api/utils"
)

// productFinder is the slice of the product store the pipeline needs.
type productFinder interface {
	FindByBarcode(ctx context.Context, userID, barcode string) (*models.Product, error)
}

// catalogFetcher is the slice of the external catalog the pipeline needs.
type catalogFetcher interface {
	Fetch(ctx context.Context, barcode string) (*models.LookedUpProduct, error)
}

// LookupService resolves a barcode against the user's saved products first,
// then the public catalog. The user-cache check always precedes the catalog
// call and the two are never raced.
type LookupService struct {
	store   productFinder
	catalog catalogFetcher
}

func NewLookupService(store productFinder, catalog catalogFetcher) *LookupService {
	return &LookupService{store: store, catalog: catalog}
}

// Lookup resolves a barcode. A miss from both sources returns a nil product
// and no error; callers treat that as "fill in details manually". Catalog
// failures (timeout, non-2xx, malformed payload) are logged and collapse to
// the same miss outcome.
func (s *LookupService) Lookup(ctx context.Context, userID, barcode string) (*models.LookupResult, error) {
	if !utils.ValidateBarcode(barcode) {
		return nil, fmt.Errorf("invalid barcode format")
	}

	cached, err := s.store.FindByBarcode(ctx, userID, barcode)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return &models.LookupResult{
			Product: &models.LookedUpProduct{
				Barcode:  cached.Barcode,
				Name:     cached.Name,
				Price:    cached.Price,
				Category: cached.Category,
			},
			Source: models.SourceUser,
		}, nil
	}

	product, err := s.catalog.Fetch(ctx, barcode)
	if err != nil {
		utils.SafeWarn("catalog lookup failed for barcode %s: %v", barcode, err)
		return &models.LookupResult{Product: nil, Source: models.SourceNone}, nil
	}
	if product == nil {
		return &models.LookupResult{Product: nil, Source: models.SourceNone}, nil
	}

	return &models.LookupResult{Product: product, Source: models.SourceCatalog}, nil
}
