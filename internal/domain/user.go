package domain

type User struct {
	ID    string `db:"id" json:"-"`
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
	Hash  string `db:"password_hash" json:"-"`
	Phone string `db:"phone" json:"phone"`
	// Avatar is a URL or data URI chosen on the profile page.
	Avatar string `db:"avatar" json:"avatar"`
}

type Address struct {
	ID      int64  `db:"id" json:"id"`
	Street  string `db:"street" json:"street"`
	City    string `db:"city" json:"city"`
	State   string `db:"state" json:"state"`
	ZipCode string `db:"zip_code" json:"zipCode"`
}

// Profile is the account owner's contact card.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	Addresses []Address `json:"addresses"`
}
