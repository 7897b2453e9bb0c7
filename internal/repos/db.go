package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
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
	// Seed the catalog if the DB is empty (idempotent; safe to run every start)
	if err := seedCatalog(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog (read-only after seeding; position preserves featured order)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price > 0),
  original_price NUMERIC NOT NULL DEFAULT 0 CHECK (original_price = 0 OR original_price >= price),
  category TEXT NOT NULL,
  material TEXT NOT NULL,
  sizes_json TEXT NOT NULL,
  colors_json TEXT NOT NULL,
  image TEXT NOT NULL,
  images_json TEXT NOT NULL,
  rating NUMERIC NOT NULL CHECK (rating >= 0 AND rating <= 5),
  reviews INTEGER NOT NULL DEFAULT 0 CHECK (reviews >= 0),
  is_new INTEGER NOT NULL DEFAULT 0,
  is_sale INTEGER NOT NULL DEFAULT 0,
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_material ON products(material);

-- Sessions: the durable token + serialized user record, written and cleared
-- together. One row per 'sid' cookie.
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  token TEXT NOT NULL,
  user_json TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Newsletter subscribers
CREATE TABLE IF NOT EXISTS newsletter_subscribers(
  email TEXT PRIMARY KEY,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Wishlists
CREATE TABLE IF NOT EXISTS wishlists(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS wishlist_items(
  wishlist_id TEXT NOT NULL REFERENCES wishlists(id) ON DELETE CASCADE,
  product_id  TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  created_at  TEXT,
  PRIMARY KEY (wishlist_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedCatalog(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting catalog products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products
	  (id,position,name,price,original_price,category,material,sizes_json,colors_json,image,images_json,rating,reviews,is_new,is_sale,description) VALUES
	  ('kente-silk-dress',1,'Kente Silk Dress',299,399,'Dresses','Kente Silk',
	    '["XS","S","M","L","XL"]','["Red","Blue","Gold"]',
	    'products/kente-silk-dress/main.jpg','["products/kente-silk-dress/main.jpg","products/kente-silk-dress/alt.jpg"]',
	    4.8,124,1,1,'Beautiful handwoven Kente silk dress with traditional patterns'),
	  ('ankara-print-blazer',2,'Ankara Print Blazer',199,0,'Outerwear','Ankara Cotton',
	    '["XS","S","M","L","XL"]','["Orange","Purple","Green"]',
	    'products/ankara-print-blazer/main.jpg','["products/ankara-print-blazer/main.jpg","products/ankara-print-blazer/alt.jpg"]',
	    4.9,89,0,0,'Contemporary blazer featuring vibrant Ankara prints'),
	  ('mudcloth-wide-pants',3,'Mudcloth Wide Pants',159,0,'Pants','Mudcloth',
	    '["XS","S","M","L","XL"]','["Brown","Black","Cream"]',
	    'products/mudcloth-wide-pants/main.jpg','["products/mudcloth-wide-pants/main.jpg"]',
	    4.7,56,1,0,'Comfortable wide-leg pants made from authentic mudcloth'),
	  ('adinkra-symbol-necklace',4,'Adinkra Symbol Necklace',79,0,'Accessories','Brass',
	    '["One Size"]','["Gold","Silver"]',
	    'products/adinkra-symbol-necklace/main.jpg','["products/adinkra-symbol-necklace/main.jpg"]',
	    5.0,203,0,0,'Handcrafted necklace featuring traditional Adinkra symbols'),
	  ('traditional-wrap-top',5,'Traditional Wrap Top',129,179,'Shirts','Ankara Cotton',
	    '["XS","S","M","L","XL"]','["Yellow","Teal"]',
	    'products/traditional-wrap-top/main.jpg','["products/traditional-wrap-top/main.jpg"]',
	    4.6,78,0,1,'Versatile wrap top cut from hand-printed Ankara cotton'),
	  ('bogolan-maxi-dress',6,'Bogolan Maxi Dress',249,0,'Dresses','Mudcloth',
	    '["XS","S","M","L","XL"]','["Brown","Indigo"]',
	    'products/bogolan-maxi-dress/main.jpg','["products/bogolan-maxi-dress/main.jpg"]',
	    4.8,134,1,0,'Flowing maxi dress in traditional Bogolan mudcloth')`)

	return tx.Commit()
}
