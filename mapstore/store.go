// store.go — Badger-backed persistence of found mappings.

package mapstore

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/isomatch/isomatch/match"
)

// Store is an append-only sink of mappings. All methods are safe for
// concurrent use; the sequence counter only moves forward.
type Store struct {
	mu   sync.Mutex
	db   *badger.DB
	next uint64
}

// Open opens (or creates) a directory-backed store and resumes the
// sequence after the highest key already present.
func Open(dir string) (*Store, error) {
	dbOpts := badger.DefaultOptions(dir)
	dbOpts.Logger = nil
	dbOpts.DetectConflicts = false

	s, err := open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "Open(%s)", dir)
	}

	return s, nil
}

// OpenInMemory opens a store that lives and dies with the process,
// mostly for tests and one-shot CLI runs without --store.
func OpenInMemory() (*Store, error) {
	dbOpts := badger.DefaultOptions("")
	dbOpts.InMemory = true
	dbOpts.Logger = nil
	dbOpts.DetectConflicts = false

	s, err := open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "OpenInMemory")
	}

	return s, nil
}

func open(dbOpts badger.Options) (*Store, error) {
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Reverse: true})
		defer it.Close()

		// In reverse mode Rewind lands on the highest key.
		if it.Rewind(); it.Valid() {
			s.next = binary.BigEndian.Uint64(it.Item().Key()) + 1
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

// Close releases the database. Further calls are no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return errors.Wrap(err, "Close")
	}

	return nil
}

// Append stores one mapping under the next sequence number.
func (s *Store) Append(m match.Mapping) error {
	const op = "Append"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.Wrap(ErrClosed, op)
	}

	buf, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, op)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(seqKey(s.next), buf)
	})
	if err != nil {
		return errors.Wrap(err, op)
	}
	s.next++

	return nil
}

// AppendAll stores the mappings in one transaction: either every one
// lands or the sequence does not move.
func (s *Store) AppendAll(ms []match.Mapping) error {
	const op = "AppendAll"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.Wrap(ErrClosed, op)
	}

	seq := s.next
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, m := range ms {
			buf, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err = txn.Set(seqKey(seq), buf); err != nil {
				return err
			}
			seq++
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "%s(%d mappings)", op, len(ms))
	}
	s.next = seq

	return nil
}

// Len counts the stored mappings by walking the key space.
func (s *Store) Len() (uint64, error) {
	const op = "Len"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, errors.Wrap(ErrClosed, op)
	}

	var n uint64
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	return n, nil
}

// Each replays every stored mapping in ascending sequence order and
// stops at the first error fn returns. The store is locked for the
// duration, so fn must not call back into it.
func (s *Store) Each(fn func(seq uint64, m match.Mapping) error) error {
	const op = "Each"

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return errors.Wrap(ErrClosed, op)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   128,
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			seq := binary.BigEndian.Uint64(item.Key())
			var m match.Mapping
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			})
			if err != nil {
				return err
			}
			if err = fn(seq, m); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)

	return k[:]
}
