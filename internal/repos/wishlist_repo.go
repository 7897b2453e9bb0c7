package repos

import (
	"time"

	"luffi/internal/domain"

	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

func (r *WishlistRepo) ensure(sessionID string) (string, error) {
	var id string
	if err := r.db.Get(&id, `SELECT id FROM wishlists WHERE session_id = ?`, sessionID); err == nil {
		return id, nil
	}
	_, err := r.db.Exec(`INSERT INTO wishlists(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *WishlistRepo) Save(sessionID, productID string) error {
	id, err := r.ensure(sessionID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
	  INSERT INTO wishlist_items(wishlist_id,product_id,created_at)
	  VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(wishlist_id,product_id) DO NOTHING
	`, id, productID)
	return err
}

func (r *WishlistRepo) Unsave(sessionID, productID string) error {
	id, err := r.ensure(sessionID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`DELETE FROM wishlist_items WHERE wishlist_id=? AND product_id=?`, id, productID)
	return err
}

func (r *WishlistRepo) List(sessionID string) ([]domain.Product, error) {
	id, err := r.ensure(sessionID)
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	err = r.db.Select(&out, `
	  SELECT p.id, p.name, p.price, p.original_price, p.category, p.material,
	         p.sizes_json, p.colors_json, p.image, p.images_json, p.rating, p.reviews,
	         p.is_new, p.is_sale, p.description, p.created_at
	  FROM wishlist_items wi JOIN products p ON p.id = wi.product_id
	  WHERE wi.wishlist_id = ?
	  ORDER BY wi.created_at ASC
	`, id)
	return out, err
}
