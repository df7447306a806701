package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendsense/spendsense-api/models"
)

type fakeFinder struct {
	product *models.Product
	err     error
	calls   int
}

func (f *fakeFinder) FindByBarcode(ctx context.Context, userID, barcode string) (*models.Product, error) {
	f.calls++
	return f.product, f.err
}

type fakeCatalog struct {
	product *models.LookedUpProduct
	err     error
	calls   int
}

func (f *fakeCatalog) Fetch(ctx context.Context, barcode string) (*models.LookedUpProduct, error) {
	f.calls++
	return f.product, f.err
}

func TestLookupFromUserCacheSkipsCatalog(t *testing.T) {
	price := 25.50
	finder := &fakeFinder{product: &models.Product{
		Barcode:  "12345678",
		Name:     "Instant Noodles",
		Price:    &price,
		Category: "food",
	}}
	catalog := &fakeCatalog{}

	svc := NewLookupService(finder, catalog)
	result, err := svc.Lookup(context.Background(), "user-1", "12345678")
	require.NoError(t, err)

	assert.Equal(t, models.SourceUser, result.Source)
	require.NotNil(t, result.Product)
	require.NotNil(t, result.Product.Price)
	assert.Equal(t, 25.50, *result.Product.Price)
	assert.Equal(t, 0, catalog.calls, "catalog must not be called on a cache hit")
}

func TestLookupFallsBackToCatalog(t *testing.T) {
	finder := &fakeFinder{}
	catalog := &fakeCatalog{product: &models.LookedUpProduct{
		Barcode:  "4800016641503",
		Name:     "Rice 1kg",
		Category: "food",
	}}

	svc := NewLookupService(finder, catalog)
	result, err := svc.Lookup(context.Background(), "user-1", "4800016641503")
	require.NoError(t, err)

	assert.Equal(t, models.SourceCatalog, result.Source)
	require.NotNil(t, result.Product)
	assert.Equal(t, "Rice 1kg", result.Product.Name)
	assert.Nil(t, result.Product.Price)
	assert.Equal(t, "food", result.Product.Category)
	assert.Equal(t, 1, finder.calls)
	assert.Equal(t, 1, catalog.calls)
}

func TestLookupCatalogFailureBecomesMiss(t *testing.T) {
	finder := &fakeFinder{}
	catalog := &fakeCatalog{err: errors.New("catalog request failed: context deadline exceeded")}

	svc := NewLookupService(finder, catalog)
	result, err := svc.Lookup(context.Background(), "user-1", "12345678")
	require.NoError(t, err, "catalog failures are absorbed, not surfaced")

	assert.Nil(t, result.Product)
	assert.Equal(t, models.SourceNone, result.Source)
}

func TestLookupMissFromBothSources(t *testing.T) {
	svc := NewLookupService(&fakeFinder{}, &fakeCatalog{})

	result, err := svc.Lookup(context.Background(), "user-1", "12345678")
	require.NoError(t, err)

	assert.Nil(t, result.Product)
	assert.Equal(t, models.SourceNone, result.Source)
}

func TestLookupRejectsMalformedBarcode(t *testing.T) {
	finder := &fakeFinder{}
	catalog := &fakeCatalog{}
	svc := NewLookupService(finder, catalog)

	for _, barcode := range []string{"", "1234567", "123456789012345", "abc12345", "1234-5678"} {
		_, err := svc.Lookup(context.Background(), "user-1", barcode)
		assert.Error(t, err, "barcode %q", barcode)
	}
	assert.Equal(t, 0, finder.calls)
	assert.Equal(t, 0, catalog.calls)
}

func TestLookupStoreErrorPropagates(t *testing.T) {
	finder := &fakeFinder{err: errors.New("connection refused")}
	svc := NewLookupService(finder, &fakeCatalog{})

	_, err := svc.Lookup(context.Background(), "user-1", "12345678")
	assert.Error(t, err)
}
