package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SessionRepo is the durable store behind the mock auth: one row per sid
// holding the opaque token and the serialized user record. The two are always
// written and cleared together.
type SessionRepo struct{ DB *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{DB: db} }

type SessionRow struct {
	Token    string `db:"token"`
	UserJSON string `db:"user_json"`
}

func (r *SessionRepo) Put(sid, token, userJSON string) error {
	_, err := r.DB.Exec(`
	  INSERT INTO sessions(id,token,user_json,updated_at)
	  VALUES(?,?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET token=excluded.token, user_json=excluded.user_json, updated_at=CURRENT_TIMESTAMP
	`, sid, token, userJSON)
	return err
}

// Get returns the stored row, or ok=false when no session exists.
func (r *SessionRepo) Get(sid string) (SessionRow, bool, error) {
	var row SessionRow
	err := r.DB.Get(&row, `SELECT token, user_json FROM sessions WHERE id = ?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRow{}, false, nil
	}
	if err != nil {
		return SessionRow{}, false, err
	}
	return row, true, nil
}

func (r *SessionRepo) Delete(sid string) error {
	_, err := r.DB.Exec(`DELETE FROM sessions WHERE id = ?`, sid)
	return err
}
