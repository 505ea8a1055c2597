package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

var ErrInsufficientStock = errors.New("insufficient stock")

const productCols = `
    id, name, sku, price, quantity, images_json,
    COALESCE(created_at,'') AS created_at, COALESCE(updated_at,'') AS updated_at`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the whole catalog in id order.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `SELECT `+productCols+` FROM products ORDER BY id`)
	return out, err
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Create inserts p and returns it with its new id.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ImagesJSON == "" {
		p.ImagesJSON = "[]"
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO products(name, sku, price, quantity, images_json, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.Name, p.SKU, p.Price, p.Quantity, p.ImagesJSON)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(ctx, id)
}

// Update overwrites the editable fields. Returns sql.ErrNoRows for unknown ids.
func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ImagesJSON == "" {
		p.ImagesJSON = "[]"
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, sku = ?, price = ?, quantity = ?, images_json = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Name, p.SKU, p.Price, p.Quantity, p.ImagesJSON, p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, sql.ErrNoRows
	}
	return r.Get(ctx, p.ID)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DecrementQuantity subtracts "by" units if enough stock exists.
func (r *ProductRepo) DecrementQuantity(ctx context.Context, id int64, by int) error {
	return decrementQuantity(ctx, r.db, id, by)
}

func decrementQuantity(ctx context.Context, ex sqlx.ExecerContext, id int64, by int) error {
	res, err := ex.ExecContext(ctx, `
		UPDATE products
		SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND quantity >= ?
	`, by, id, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, ErrInsufficientStock)
	}
	return nil
}
