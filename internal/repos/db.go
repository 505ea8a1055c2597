package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo catalog, menu and help content on an empty database
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedSettings(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog (inventory + point of sale)
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  sku TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  images_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));

-- Completed sales
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  channel TEXT NOT NULL CHECK (channel IN ('retail','restaurant')),
  table_name TEXT NOT NULL DEFAULT '',
  total TEXT NOT NULL,
  tendered TEXT NOT NULL,
  change_due TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at);

CREATE TABLE IF NOT EXISTS sale_items(
  sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
  item_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price TEXT NOT NULL,
  PRIMARY KEY (sale_id, item_id)
);

-- Restaurant
CREATE TABLE IF NOT EXISTS menu_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  category TEXT NOT NULL,
  image TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category);

CREATE TABLE IF NOT EXISTS restaurant_tables(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  seats INTEGER NOT NULL CHECK (seats > 0),
  status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available','occupied','reserved'))
);

-- Shell settings
CREATE TABLE IF NOT EXISTS settings(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS nav_items(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  path TEXT NOT NULL,
  enabled INTEGER NOT NULL DEFAULT 1,
  position INTEGER NOT NULL
);

-- Account & profile
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  avatar TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS addresses(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  street TEXT NOT NULL,
  city TEXT NOT NULL,
  state TEXT NOT NULL,
  zip_code TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id);

-- Warehouse & distribution
CREATE TABLE IF NOT EXISTS stock_entries(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  location TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Help
CREATE TABLE IF NOT EXISTS faqs(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  question TEXT NOT NULL,
  answer TEXT NOT NULL
);

-- Dashboard
CREATE TABLE IF NOT EXISTS widgets(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  type TEXT NOT NULL,
  col INTEGER NOT NULL CHECK (col IN (1,2,3))
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products/menu/tables/faqs")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(name,sku,price,quantity,images_json) VALUES
	  ('Product A','SKU-A','10.00',50,'["/images/product-a.jpg"]'),
	  ('Product B','SKU-B','15.00',30,'["/images/product-b.jpg"]'),
	  ('Product C','SKU-C','20.00',20,'["/images/product-c.jpg"]'),
	  ('Product D','SKU-D','25.00',15,'["/images/product-d.jpg"]'),
	  ('Product E','SKU-E','30.00',25,'["/images/product-e.jpg"]'),
	  ('Product F','SKU-F','35.00',10,'["/images/product-f.jpg"]'),
	  ('Product G','SKU-G','40.00',5,'["/images/product-g.jpg"]')`)

	tx.MustExec(`INSERT INTO menu_items(name,price,category,image) VALUES
	  ('Margherita Pizza','12.50','Mains','/images/margherita.jpg'),
	  ('Caesar Salad','8.00','Starters','/images/caesar.jpg'),
	  ('Tomato Soup','6.50','Starters','/images/soup.jpg'),
	  ('Tiramisu','7.00','Desserts','/images/tiramisu.jpg'),
	  ('Lemonade','3.50','Drinks','/images/lemonade.jpg')`)

	tx.MustExec(`INSERT INTO restaurant_tables(name,seats,status) VALUES
	  ('Table 1',2,'available'),
	  ('Table 2',4,'available'),
	  ('Table 3',4,'reserved'),
	  ('Table 4',6,'available')`)

	tx.MustExec(`INSERT INTO faqs(question,answer) VALUES
	  ('How do I complete a sale?','Add products to the order, press Complete Sale and enter the cash received.'),
	  ('Why can I not add more of a product?','An order line never exceeds the quantity in stock.'),
	  ('How do I hide a module?','Open Settings and switch the module off in the navigation list.')`)

	return tx.Commit()
}

// seedSettings writes default shell settings for keys that are missing.
// Safe to run on every startup (idempotent).
func seedSettings(db *sqlx.DB) error {
	return NewSettingsRepo(db).SaveDefaults()
}

// SeedOwner ensures the business owner account exists (idempotent). The
// password is only hashed when the account is created.
func SeedOwner(db *sqlx.DB, id, email, name, password string) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE LOWER(email)=LOWER(?)`, email); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash)
		VALUES(?,?,?,?)
		ON CONFLICT(email) DO NOTHING
	`, id, email, name, string(h))
	return err
}
