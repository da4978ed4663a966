// Package storage persists small pieces of client state (token pair,
// last-known session snapshot) as sealed files under a fixed namespace
// directory. Contents are encrypted at rest with XChaCha20-Poly1305 under a
// random key created on first use and kept in a 0600 keyfile next to the
// data.
package storage

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/studioportal/portal-client/internal/common"
)

const keyFileName = "storage.key"

// Store reads and writes sealed JSON documents inside a namespace directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the namespace directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// key loads the sealing key, generating and persisting a fresh one if none
// exists yet.
func (s *Store) key() ([]byte, error) {
	p := s.path(keyFileName)

	k, err := os.ReadFile(p)
	if err == nil {
		if len(k) != chacha20poly1305.KeySize {
			return nil, &common.StorageError{Op: "key", Err: fmt.Errorf("keyfile %s has invalid size %d", p, len(k))}
		}
		return k, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &common.StorageError{Op: "key", Err: err}
	}

	k = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(k); err != nil {
		return nil, &common.StorageError{Op: "key", Err: err}
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, &common.StorageError{Op: "key", Err: err}
	}
	if err := os.WriteFile(p, k, 0o600); err != nil {
		return nil, &common.StorageError{Op: "key", Err: err}
	}
	return k, nil
}

// Write marshals v to JSON, seals it and writes it to name. An existing file
// is overwritten.
func (s *Store) Write(name string, v any) error {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return &common.StorageError{Op: "write " + name, Err: err}
	}

	key, err := s.key()
	if err != nil {
		return err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return &common.StorageError{Op: "write " + name, Err: err}
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return &common.StorageError{Op: "write " + name, Err: err}
	}
	sealed := aead.Seal(nonce, nonce, plaintext, nil)

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return &common.StorageError{Op: "write " + name, Err: err}
	}
	if err := os.WriteFile(s.path(name), sealed, 0o600); err != nil {
		return &common.StorageError{Op: "write " + name, Err: err}
	}
	return nil
}

// Read unseals name into v. The second return is false when no such document
// exists; that is not an error.
func (s *Store) Read(name string, v any) (bool, error) {
	sealed, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &common.StorageError{Op: "read " + name, Err: err}
	}

	key, err := s.key()
	if err != nil {
		return false, err
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return false, &common.StorageError{Op: "read " + name, Err: err}
	}
	if len(sealed) < aead.NonceSize() {
		return false, &common.StorageError{Op: "read " + name, Err: errors.New("sealed document truncated")}
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return false, &common.StorageError{Op: "read " + name, Err: err}
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return false, &common.StorageError{Op: "read " + name, Err: err}
	}
	return true, nil
}

// Remove deletes name. Removing a document that does not exist is a no-op.
func (s *Store) Remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &common.StorageError{Op: "remove " + name, Err: err}
	}
	return nil
}
