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
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (seller + a few listings)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the seller account exists (idempotent; safe to run every start)
	if err := seedSellers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Sellers & Sessions
CREATE TABLE IF NOT EXISTS sellers(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_sellers_email ON sellers(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  seller_id TEXT NULL REFERENCES sellers(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_seller ON sessions(seller_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL REFERENCES sellers(id) ON DELETE RESTRICT,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  price TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('Madera','Metal','Madera+Metal','Cerámica','Vidrio','Otros')),
  images_json TEXT,
  status INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_owner      ON products(owner_id);
CREATE INDEX IF NOT EXISTS idx_products_title      ON products(LOWER(title));
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_status     ON products(status);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Sales (append-only; rows are never updated or deleted)
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  title TEXT NOT NULL,
  price TEXT NOT NULL,
  category TEXT NOT NULL,
  sold_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at);
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

	log.Println("[seed] inserting demo listings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO sellers(id,email,name,password_hash)
	  SELECT 's-sergio','sergio@artesania.test','Sergio','*'
	  WHERE NOT EXISTS (SELECT 1 FROM sellers WHERE id='s-sergio')`)

	tx.MustExec(`INSERT INTO products(id,owner_id,title,description,price,category,images_json,status) VALUES
	  ('p-mesa-roble','s-sergio','Mesa de Roble','Mesa rústica en madera de roble y fierro forjado','150000','Madera+Metal','["products/p-mesa-roble/main.jpg"]',1),
	  ('p-jarron','s-sergio','Jarrón de Greda','Jarrón hecho a mano, esmaltado','25000','Cerámica','["products/p-jarron/main.jpg","products/p-jarron/detalle.jpg"]',1),
	  ('p-banco','s-sergio','Banco de Jardín','Banco de fierro para exterior','89000','Metal','["products/p-banco/main.jpg"]',1)`)

	return tx.Commit()
}

// seedSellers ensures the seller account exists with a real password hash
// (idempotent; the placeholder hash from seedIfEmpty is replaced).
func seedSellers(db *sqlx.DB) error {
	h, _ := bcrypt.GenerateFromPassword([]byte("Artesano1!"), 12)

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO sellers(id,email,name,password_hash)
		VALUES('s-sergio','sergio@artesania.test','Sergio',?)
		ON CONFLICT(email) DO UPDATE SET password_hash=excluded.password_hash
		WHERE password_hash='*'
	`, string(h)); err != nil {
		return err
	}

	return tx.Commit()
}
