package repos

import (
	"database/sql"

	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type WidgetRepo struct{ db *sqlx.DB }

func NewWidgetRepo(db *sqlx.DB) *WidgetRepo { return &WidgetRepo{db: db} }

func (r *WidgetRepo) List() ([]domain.Widget, error) {
	out := []domain.Widget{}
	err := r.db.Select(&out, `SELECT id, type, col FROM widgets ORDER BY col, id`)
	return out, err
}

func (r *WidgetRepo) Add(typ string, col int) (domain.Widget, error) {
	res, err := r.db.Exec(`INSERT INTO widgets(type, col) VALUES (?, ?)`, typ, col)
	if err != nil {
		return domain.Widget{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Widget{}, err
	}
	return domain.Widget{ID: id, Type: typ, Column: col}, nil
}

func (r *WidgetRepo) Remove(id int64) error {
	res, err := r.db.Exec(`DELETE FROM widgets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *WidgetRepo) Get(id int64) (domain.Widget, error) {
	var w domain.Widget
	err := r.db.Get(&w, `SELECT id, type, col FROM widgets WHERE id = ?`, id)
	return w, err
}

func (r *WidgetRepo) SetColumn(id int64, col int) error {
	res, err := r.db.Exec(`UPDATE widgets SET col = ? WHERE id = ?`, col, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
