// Package store keeps named positions ("presets") in a badger database.
package store

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
)

const keyPrefix = "preset/"

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Preset is a saved position. FEN is always in canonical form.
type Preset struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Updated time.Time `json:"updated"`
}

// Store wraps BadgerDB for persistent preset storage.
type Store struct {
	db *badger.DB
}

// Open opens the database in dir, creating it if needed. An empty dir
// keeps everything in memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening preset store %q", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	return Open("")
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ValidateName checks that name only uses letters, digits, '-' and '_' and
// is at most 64 bytes long.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidPresetName, name)
	}
	return nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

// Save decodes fen and stores its canonical form under name, replacing any
// previous preset of that name.
func (s *Store) Save(name, fen string, strict bool) (*Preset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	decode := chess.NewPositionFromFEN
	if strict {
		decode = chess.NewPositionFromFENStrict
	}
	p, counters, err := decode(fen)
	if err != nil {
		return nil, err
	}

	preset := &Preset{
		Name:    name,
		FEN:     p.FENWithCounters(counters),
		Updated: time.Now().UTC(),
	}
	data, err := json.Marshal(preset)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return nil, err
	}
	return preset, nil
}

// Load returns the preset saved under name.
func (s *Store) Load(name string) (*Preset, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	var preset Preset
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", errors.ErrPresetNotFound, name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &preset)
		})
	})
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// Position loads a preset and decodes it.
func (s *Store) Position(name string) (*chess.Position, chess.Counters, error) {
	preset, err := s.Load(name)
	if err != nil {
		return nil, chess.Counters{}, err
	}
	return chess.NewPositionFromFEN(preset.FEN)
}

// Delete removes the preset saved under name.
func (s *Store) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", errors.ErrPresetNotFound, name)
		}
		if err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
}

// List returns every preset ordered by name.
func (s *Store) List() ([]*Preset, error) {
	presets := make([]*Preset, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			preset := &Preset{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, preset)
			})
			if err != nil {
				return err
			}
			presets = append(presets, preset)
		}
		return nil
	})

	return presets, err
}
