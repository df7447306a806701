package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendsense/spendsense-api/models"
)

// ProductService is the user's personal cache of previously priced barcodes.
type ProductService struct {
	db *sql.DB
}

func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

// FindByBarcode returns the user's saved product for a barcode, or nil when
// none is saved.
func (s *ProductService) FindByBarcode(ctx context.Context, userID, barcode string) (*models.Product, error) {
	var p models.Product
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, barcode, name, price, category, created_at, updated_at
		FROM products
		WHERE user_id = $1 AND barcode = $2
	`, userID, barcode).Scan(&p.ID, &p.UserID, &p.Barcode, &p.Name, &p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save upserts the user's product for a barcode; future scans of the same
// barcode then resolve from the cache.
func (s *ProductService) Save(ctx context.Context, userID string, req models.SaveProductRequest) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, user_id, barcode, name, price, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id, barcode)
		DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price,
		              category = EXCLUDED.category, updated_at = NOW()
	`, uuid.New().String(), userID, req.Barcode, req.Name, req.Price, req.Category)
	return err
}

// List returns the user's saved products ordered by name.
func (s *ProductService) List(ctx context.Context, userID string) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, barcode, name, price, category, created_at, updated_at
		FROM products
		WHERE user_id = $1
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Barcode, &p.Name, &p.Price, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductService) Delete(ctx context.Context, productID, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM products WHERE id = $1 AND user_id = $2
	`, productID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
