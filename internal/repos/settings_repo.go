package repos

import (
	"database/sql"

	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// SaveDefaults inserts default values for every missing key and navigation
// entry, leaving saved choices alone.
func (r *SettingsRepo) SaveDefaults() error {
	def := domain.DefaultSettings()
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range settingValues(def) {
		if _, err := tx.Exec(`INSERT INTO settings(key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`, k, v); err != nil {
			return err
		}
	}
	for _, n := range def.Navigation {
		if _, err := tx.Exec(`
			INSERT INTO nav_items(id, name, path, enabled, position)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, n.ID, n.Name, n.Path, n.Enabled, n.Position); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func settingValues(s domain.Settings) map[string]string {
	return map[string]string{
		"app_name": s.AppName,
		"currency": s.Currency,
		"theme":    s.Theme,
		"color":    s.Color,
	}
}

func (r *SettingsRepo) Load() (domain.Settings, error) {
	var rows []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := r.db.Select(&rows, `SELECT key, value FROM settings`); err != nil {
		return domain.Settings{}, err
	}
	s := domain.DefaultSettings()
	for _, kv := range rows {
		switch kv.Key {
		case "app_name":
			s.AppName = kv.Value
		case "currency":
			s.Currency = kv.Value
		case "theme":
			s.Theme = kv.Value
		case "color":
			s.Color = kv.Value
		}
	}
	nav := []domain.NavItem{}
	if err := r.db.Select(&nav, `SELECT id, name, path, enabled, position FROM nav_items ORDER BY position, id`); err != nil {
		return domain.Settings{}, err
	}
	s.Navigation = nav
	return s, nil
}

// Save writes every scalar setting and the enabled flag of each navigation item.
func (r *SettingsRepo) Save(s domain.Settings) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range settingValues(s) {
		if _, err := tx.Exec(`
			INSERT INTO settings(key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return err
		}
	}
	for _, n := range s.Navigation {
		if _, err := tx.Exec(`UPDATE nav_items SET enabled = ? WHERE id = ?`, n.Enabled, n.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SetNavEnabled toggles one navigation item. Returns sql.ErrNoRows for unknown ids.
func (r *SettingsRepo) SetNavEnabled(id string, enabled bool) error {
	res, err := r.db.Exec(`UPDATE nav_items SET enabled = ? WHERE id = ?`, enabled, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
