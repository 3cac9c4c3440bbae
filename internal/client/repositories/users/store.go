// Package users keeps the list of registered accounts in the key-value store.
//
// The whole collection lives under a single key as one JSON array and is
// read and rewritten as a unit on every mutation. Uniqueness of emails is the
// caller's responsibility. There is no locking: concurrent read-modify-write
// cycles from two processes can lose an update.
package users

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/postfeed/internal/client/models"
	"github.com/dmitrijs2005/postfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/postfeed/internal/common"
	"github.com/dmitrijs2005/postfeed/internal/logging"
)

// Key is the metadata key holding the serialized collection.
const Key = "users"

type Store struct {
	kv  metadata.Repository
	log logging.Logger
}

func NewStore(kv metadata.Repository, log logging.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// LoadUsers returns all stored records in insertion order. A missing or
// unparsable blob yields an empty slice; only a failing read is an error.
func (s *Store) LoadUsers(ctx context.Context) ([]models.UserRecord, error) {
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, &common.StorageError{Op: "load users", Err: err}
	}
	if !ok || raw == "" {
		return []models.UserRecord{}, nil
	}

	var users []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warn(ctx, "ignoring unparsable user store", "error", err)
		return []models.UserRecord{}, nil
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

// FindUser returns the record with exactly this email, or nil.
func (s *Store) FindUser(ctx context.Context, email string) (*models.UserRecord, error) {
	users, err := s.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// SaveUsers overwrites the stored collection with users.
func (s *Store) SaveUsers(ctx context.Context, users []models.UserRecord) error {
	if users == nil {
		users = []models.UserRecord{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return &common.StorageError{Op: "encode users", Err: err}
	}
	if err := s.kv.Set(ctx, Key, string(b)); err != nil {
		return &common.StorageError{Op: "save users", Err: err}
	}
	return nil
}
