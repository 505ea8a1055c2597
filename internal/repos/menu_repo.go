package repos

import (
	"database/sql"

	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MenuRepo struct{ db *sqlx.DB }

func NewMenuRepo(db *sqlx.DB) *MenuRepo { return &MenuRepo{db: db} }

func (r *MenuRepo) Items() ([]domain.MenuItem, error) {
	out := []domain.MenuItem{}
	err := r.db.Select(&out, `SELECT id, name, price, category, image FROM menu_items ORDER BY category, name`)
	return out, err
}

func (r *MenuRepo) Categories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `SELECT DISTINCT category FROM menu_items ORDER BY category`)
	return out, err
}

func (r *MenuRepo) Tables() ([]domain.Table, error) {
	out := []domain.Table{}
	err := r.db.Select(&out, `SELECT id, name, seats, status FROM restaurant_tables ORDER BY id`)
	return out, err
}

func (r *MenuRepo) TableByName(name string) (domain.Table, error) {
	var t domain.Table
	err := r.db.Get(&t, `SELECT id, name, seats, status FROM restaurant_tables WHERE LOWER(name) = LOWER(?)`, name)
	return t, err
}

// SetTableStatus returns sql.ErrNoRows for unknown tables.
func (r *MenuRepo) SetTableStatus(id int64, status string) error {
	res, err := r.db.Exec(`UPDATE restaurant_tables SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
