package repos

import (
	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type WarehouseRepo struct{ db *sqlx.DB }

func NewWarehouseRepo(db *sqlx.DB) *WarehouseRepo { return &WarehouseRepo{db: db} }

func (r *WarehouseRepo) List() ([]domain.StockEntry, error) {
	out := []domain.StockEntry{}
	err := r.db.Select(&out, `
		SELECT id, name, quantity, location, COALESCE(created_at,'') AS created_at
		FROM stock_entries
		ORDER BY datetime(created_at), name
	`)
	return out, err
}

func (r *WarehouseRepo) Add(e domain.StockEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO stock_entries(id, name, quantity, location, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, e.ID, e.Name, e.Quantity, e.Location)
	return err
}
