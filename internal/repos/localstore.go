package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite file backing local storage and ensures its schema.
// Local storage is a single key/value table, used the way a browser page
// uses localStorage: one JSON blob per key, last write wins.
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
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS local_storage(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

type LocalRepo struct{ DB *sqlx.DB }

func NewLocalRepo(db *sqlx.DB) *LocalRepo { return &LocalRepo{DB: db} }

// Get returns the stored value for key, or ("", false) when the key is absent.
func (r *LocalRepo) Get(key string) (string, bool, error) {
	var v string
	err := r.DB.Get(&v, `SELECT value FROM local_storage WHERE key=?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *LocalRepo) Set(key, value string) error {
	_, err := r.DB.Exec(`
	  INSERT INTO local_storage(key,value,updated_at)
	  VALUES(?,?,CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value=excluded.value,updated_at=CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (r *LocalRepo) Delete(key string) error {
	_, err := r.DB.Exec(`DELETE FROM local_storage WHERE key=?`, key)
	return err
}
