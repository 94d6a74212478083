package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/AniketJas/volunteer-signup/logging"
)

// Store is the durable key/value substrate. Each table is a single key
// holding a JSON array; Save overwrites the whole table, so read-modify-write
// is the caller's responsibility.
type Store interface {
	// Load decodes the named table into out. It returns false when the table
	// is missing or its contents cannot be decoded; callers treat false as an
	// empty collection. A decode failure is logged, never surfaced.
	Load(table string, out any) bool
	// Save marshals records and overwrites the table. Returns false on failure.
	Save(table string, records any) bool
	Close() error
}

type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(dataDir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dataDir).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		logging.Log.Errorf("STORE: failed to open data store at %s: %v", dataDir, err)
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// NewInMemoryStore opens a store that is not persisted to disk, used by tests.
func NewInMemoryStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Load(table string, out any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(table))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Log.Errorf("STORE: failed to read table %s: %v", table, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logging.Log.Errorf("STORE: corrupt data in table %s, treating as empty: %v", table, err)
		return false
	}
	return true
}

func (s *BadgerStore) Save(table string, records any) bool {
	raw, err := json.Marshal(records)
	if err != nil {
		logging.Log.Errorf("STORE: failed to marshal table %s: %v", table, err)
		return false
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(table), raw)
	})
	if err != nil {
		logging.Log.Errorf("STORE: failed to write table %s: %v", table, err)
		return false
	}
	return true
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
