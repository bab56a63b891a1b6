// Package store persists the saved-character list and the working
// character in sqlite. The whole list lives as one JSON blob under a
// single key, so loads go through the same permissive import layer as
// files: a missing or malformed blob is an empty list, never an error.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/peetj/lcd-character-creator/internal/glyph"
	"github.com/peetj/lcd-character-creator/internal/record"
)

//go:embed schema.sql
var schema string

const (
	savesKey   = "saves"
	currentKey = "current"
)

// Store owns the saved-record list exclusively; callers mutate it only
// through the operations below.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("Couldn't open database:\n%w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("Couldn't initialise database:\n%w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Transact runs f in a transaction, committing afterward, or rolling
// back if f returns an error.
func (s *Store) Transact(f func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if err := f(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			return fmt.Errorf("Failed to roll back transaction: %w\n\nAfter handling: %v", err2, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction:\n%w", err)
	}
	return nil
}

func (s *Store) get(key string) ([]byte, bool, error) {
	var value []byte
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("Failed to read key %q:\n%w", key, err)
	}
	return value, true, nil
}

func put(tx *sql.Tx, key string, value []byte) error {
	_, err := tx.Exec(`
		INSERT INTO kv(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("Failed to write key %q:\n%w", key, err)
	}
	return nil
}

// Load returns the saved list. Absent or malformed stored data yields
// an empty list; only database failures are errors.
func (s *Store) Load() ([]record.Saved, error) {
	blob, found, err := s.get(savesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []record.Saved{}, nil
	}
	res, err := record.Import(blob)
	if err != nil || res.Saves == nil {
		return []record.Saved{}, nil
	}
	return res.Saves, nil
}

// Save replaces the entire list.
func (s *Store) Save(saves []record.Saved) error {
	blob, err := record.MarshalList(saves)
	if err != nil {
		return fmt.Errorf("Couldn't serialize saved list:\n%w", err)
	}
	return s.Transact(func(tx *sql.Tx) error {
		return put(tx, savesKey, blob)
	})
}

// Add prepends a new record to the list.
func (s *Store) Add(sv record.Saved) error {
	saves, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append([]record.Saved{sv}, saves...))
}

// Merge prepends imported records to the existing list. Ids are taken
// as given; import never replaces or deduplicates.
func (s *Store) Merge(imported []record.Saved) error {
	saves, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(imported, saves...))
}

// Get returns the record with the given id, or nil when absent.
func (s *Store) Get(id string) (*record.Saved, error) {
	saves, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range saves {
		if saves[i].ID == id {
			return &saves[i], nil
		}
	}
	return nil, nil
}

// Rename changes a record's name and bumps its updatedAt.
func (s *Store) Rename(id, name string) error {
	return s.update(id, func(sv *record.Saved) {
		sv.Name = name
	})
}

// Overwrite replaces a record's character snapshot and settings.
func (s *Store) Overwrite(id string, c glyph.Character) error {
	return s.update(id, func(sv *record.Saved) {
		sv.Rows = c.Rows
		sv.Color = c.Color
		sv.Interfacing = c.Interfacing
		sv.Datatype = c.Datatype
	})
}

func (s *Store) update(id string, mutate func(*record.Saved)) error {
	saves, err := s.Load()
	if err != nil {
		return err
	}
	for i := range saves {
		if saves[i].ID == id {
			mutate(&saves[i])
			saves[i].UpdatedAt = time.Now().UTC()
			return s.Save(saves)
		}
	}
	return fmt.Errorf("No saved character with id %s", id)
}

// Delete removes a record by id. Deleting an unknown id is an error so
// the caller can report it.
func (s *Store) Delete(id string) error {
	saves, err := s.Load()
	if err != nil {
		return err
	}
	for i := range saves {
		if saves[i].ID == id {
			return s.Save(append(saves[:i], saves[i+1:]...))
		}
	}
	return fmt.Errorf("No saved character with id %s", id)
}

// Current returns the working character, defaulting to a blank one
// when nothing was stored or the blob is malformed.
func (s *Store) Current() glyph.Character {
	blob, found, err := s.get(currentKey)
	if err != nil || !found {
		return glyph.DefaultCharacter()
	}
	res, err := record.Import(blob)
	if err != nil || res.Character == nil {
		return glyph.DefaultCharacter()
	}
	return *res.Character
}

// SetCurrent persists the working character.
func (s *Store) SetCurrent(c glyph.Character) error {
	blob, err := record.MarshalSingle(c)
	if err != nil {
		return fmt.Errorf("Couldn't serialize character:\n%w", err)
	}
	return s.Transact(func(tx *sql.Tx) error {
		return put(tx, currentKey, blob)
	})
}
