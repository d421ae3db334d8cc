// Package store keeps named word lists in a bbolt file so a dictionary can be
// imported once and read back already sorted.
package store

import (
	"errors"
	"fmt"
	"os"

	bolt "go.etcd.io/bbolt"
)

var FileModeRW os.FileMode = 0600

var ErrNotFound = errors.New("dictionary not found")

// bbolt rejects empty keys, so every word is stored behind this marker.
const keyPrefix = '.'

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, FileModeRW, nil)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Import replaces the dictionary called name with words.
func (s *Store) Import(name string, words []string) error {
	if name == "" {
		return errors.New("dictionary name is required")
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(name)) != nil {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return fmt.Errorf("failed to clear bucket: %w", err)
			}
		}
		bucket, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		for _, w := range words {
			if err := bucket.Put(wordKey(w), []byte("")); err != nil {
				return fmt.Errorf("failed to insert '%s': %w", w, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bbolt db.Update in Import failed: %w", err)
	}
	return nil
}

// Words returns the dictionary called name in ascending order without
// duplicates, which is bbolt's key order.
func (s *Store) Words(name string) ([]string, error) {
	var words []string
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(name))
		if bucket == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		words = make([]string, 0, bucket.Stats().KeyN)
		return bucket.ForEach(func(k, _ []byte) error {
			words = append(words, string(k[1:]))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// Names lists the stored dictionaries.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	return names, err
}

func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(name))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	})
}

func wordKey(w string) []byte {
	key := make([]byte, 0, len(w)+1)
	key = append(key, keyPrefix)
	return append(key, w...)
}
