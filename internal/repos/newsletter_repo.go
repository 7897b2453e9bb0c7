package repos

import "github.com/jmoiron/sqlx"

type NewsletterRepo struct{ db *sqlx.DB }

func NewNewsletterRepo(db *sqlx.DB) *NewsletterRepo { return &NewsletterRepo{db: db} }

// Subscribe records an email; re-subscribing the same address is a no-op.
func (r *NewsletterRepo) Subscribe(email string) error {
	_, err := r.db.Exec(`
	  INSERT INTO newsletter_subscribers(email) VALUES(?)
	  ON CONFLICT(email) DO NOTHING
	`, email)
	return err
}

func (r *NewsletterRepo) List() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT email FROM newsletter_subscribers ORDER BY created_at ASC, email ASC`)
	return out, err
}
