package sqlite

import (
	"database/sql"
)

// batch writes several keys in one transaction
type batch struct {
	tx *sql.Tx
}

// Set inserts or replaces a key
func (b *batch) Set(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := b.tx.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Delete removes a key
func (b *batch) Delete(key string) error {
	_, err := b.tx.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Import replaces the given keys atomically. Either every key is written
// or none is. A nil value deletes its key.
func (s *Store) Import(values map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	b := &batch{tx: tx}
	for k, v := range values {
		var err error
		if v == nil {
			err = b.Delete(k)
		} else {
			err = b.Set(k, v)
		}
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
