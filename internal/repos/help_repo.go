package repos

import (
	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type HelpRepo struct{ db *sqlx.DB }

func NewHelpRepo(db *sqlx.DB) *HelpRepo { return &HelpRepo{db: db} }

func (r *HelpRepo) FAQs() ([]domain.FAQ, error) {
	out := []domain.FAQ{}
	err := r.db.Select(&out, `SELECT id, question, answer FROM faqs ORDER BY id`)
	return out, err
}
