package repos

import (
	"database/sql"

	"bizhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id, email, name, password_hash, phone, avatar`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) SetPasswordHash(userID, hash string) error {
	res, err := r.DB.Exec(`UPDATE users SET password_hash=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`, hash, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *UserRepo) UpdateContact(userID, name, email, phone, avatar string) error {
	res, err := r.DB.Exec(`
		UPDATE users SET name=?, email=?, phone=?, avatar=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?
	`, name, email, phone, avatar, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the user; addresses cascade.
func (r *UserRepo) Delete(userID string) error {
	tx, err := r.DB.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM addresses WHERE user_id=?`, userID); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM users WHERE id=?`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}

func (r *UserRepo) Addresses(userID string) ([]domain.Address, error) {
	out := []domain.Address{}
	err := r.DB.Select(&out, `SELECT id, street, city, state, zip_code FROM addresses WHERE user_id=? ORDER BY id`, userID)
	return out, err
}

func (r *UserRepo) AddAddress(userID string, a domain.Address) (domain.Address, error) {
	res, err := r.DB.Exec(`
		INSERT INTO addresses(user_id, street, city, state, zip_code) VALUES (?, ?, ?, ?, ?)
	`, userID, a.Street, a.City, a.State, a.ZipCode)
	if err != nil {
		return domain.Address{}, err
	}
	a.ID, err = res.LastInsertId()
	return a, err
}

func (r *UserRepo) UpdateAddress(userID string, a domain.Address) error {
	res, err := r.DB.Exec(`
		UPDATE addresses SET street=?, city=?, state=?, zip_code=? WHERE id=? AND user_id=?
	`, a.Street, a.City, a.State, a.ZipCode, a.ID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *UserRepo) RemoveAddress(userID string, id int64) error {
	res, err := r.DB.Exec(`DELETE FROM addresses WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
