// Package token owns persistence of the access/refresh token pair. The pair
// is created on successful login and cleared on logout or on any
// authentication failure signal; no other component writes it.
package token

import (
	"github.com/studioportal/portal-client/internal/models"
	"github.com/studioportal/portal-client/internal/storage"
)

const tokenFileName = "tokens.json"

// Store persists the token pair in sealed durable storage.
type Store struct {
	storage *storage.Store
}

func NewStore(st *storage.Store) *Store {
	return &Store{storage: st}
}

// Save writes the pair, overwriting any existing one.
func (s *Store) Save(pair models.TokenPair) error {
	return s.storage.Write(tokenFileName, pair)
}

// Load reads the persisted pair. ok is false when no pair is stored.
func (s *Store) Load() (pair models.TokenPair, ok bool, err error) {
	found, err := s.storage.Read(tokenFileName, &pair)
	if err != nil {
		return models.TokenPair{}, false, err
	}
	if !found || pair.Empty() {
		return models.TokenPair{}, false, nil
	}
	return pair, true, nil
}

// Clear removes the pair. Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	return s.storage.Remove(tokenFileName)
}
