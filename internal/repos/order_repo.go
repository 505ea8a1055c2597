package repos

import (
	"context"

	"bizhub/internal/domain"
	"bizhub/internal/pos"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// SaleRepo is the order sink for both counters.
type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

type SaleItemRow struct {
	ItemID   int64           `db:"item_id" json:"itemId"`
	Name     string          `db:"name" json:"name"`
	Qty      int             `db:"qty" json:"quantity"`
	Price    decimal.Decimal `db:"price" json:"price"`
	Subtotal decimal.Decimal `db:"-" json:"subtotal"`
}

// SubmitOrder persists the sale and its lines. Stocked sales also decrement
// product quantities; the whole sale is rolled back if any line is short.
func (r *SaleRepo) SubmitOrder(ctx context.Context, s pos.Submission) (string, error) {
	channel := s.Channel
	if channel == "" {
		channel = "retail"
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx, `
	  INSERT INTO sales(id, channel, table_name, total, tendered, change_due, created_at)
	  VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, channel, s.Table, s.Total, s.Tendered, s.ChangeDue); err != nil {
		return "", err
	}

	for _, l := range s.Lines {
		if _, err := tx.ExecContext(ctx, `
		  INSERT INTO sale_items(sale_id, item_id, name, qty, price)
		  VALUES (?, ?, ?, ?, ?)
		`, id, l.ItemID, l.Name, l.Quantity, l.UnitPrice); err != nil {
			return "", err
		}
		if s.Stocked {
			if err := decrementQuantity(ctx, tx, l.ItemID, l.Quantity); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (r *SaleRepo) Get(ctx context.Context, id string) (domain.SaleSummary, []SaleItemRow, error) {
	var s domain.SaleSummary
	if err := r.db.GetContext(ctx, &s, `
		SELECT id, channel, table_name, total, tendered, change_due, created_at
		FROM sales WHERE id = ?
	`, id); err != nil {
		return domain.SaleSummary{}, nil, err
	}

	items := []SaleItemRow{}
	if err := r.db.SelectContext(ctx, &items, `
		SELECT item_id, name, qty, price
		FROM sale_items
		WHERE sale_id = ?
		ORDER BY name
	`, id); err != nil {
		return domain.SaleSummary{}, nil, err
	}
	for i := range items {
		items[i].Subtotal = items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Qty)))
	}
	return s, items, nil
}

func (r *SaleRepo) ListLatest(ctx context.Context, limit int) ([]domain.SaleSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	out := []domain.SaleSummary{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, channel, table_name, total, tendered, change_due, created_at
		FROM sales
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}
