package memory

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/mufasadev/account-ledger/internal/domain/models"
	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
)

type digest [sha256.Size]byte

// prefix is the part of a digest used as the map key. Entries sharing a
// prefix live in the same bucket and are told apart by the full digest.
type prefix [8]byte

type credentialEntry struct {
	digest    digest
	accountID string
}

// CredentialStore resolves credentials to account ids. Credentials are held
// only as SHA-256 digests, bucketed by digest prefix, so a lookup is O(1) and
// the full digest is compared in constant time.
type CredentialStore struct {
	buckets map[prefix][]credentialEntry
	size    int
}

var _ repositories.CredentialRepository = (*CredentialStore)(nil)

// NewCredentialStore builds the store. Every credential must be non-empty,
// unique and bound to exactly one account.
func NewCredentialStore(credentials []models.Credential) (*CredentialStore, error) {
	s := &CredentialStore{buckets: make(map[prefix][]credentialEntry, len(credentials))}
	accounts := make(map[string]struct{}, len(credentials))
	for _, c := range credentials {
		if c.Key == "" {
			return nil, fmt.Errorf("account %q: credential is empty", c.AccountID)
		}
		if c.AccountID == "" {
			return nil, fmt.Errorf("credential is not bound to an account")
		}
		if _, dup := accounts[c.AccountID]; dup {
			return nil, fmt.Errorf("account %q has more than one credential", c.AccountID)
		}
		d := sha256.Sum256([]byte(c.Key))
		if _, ok := s.find(d); ok {
			return nil, fmt.Errorf("account %q: credential is already in use", c.AccountID)
		}
		s.add(credentialEntry{digest: d, accountID: c.AccountID})
		accounts[c.AccountID] = struct{}{}
	}

	return s, nil
}

// Resolve returns the account id bound to credential.
func (s *CredentialStore) Resolve(_ context.Context, credential string) (string, error) {
	e, ok := s.find(sha256.Sum256([]byte(credential)))
	if !ok {
		return "", apperrors.NewUnauthenticatedError()
	}
	return e.accountID, nil
}

// Len returns the number of stored credentials.
func (s *CredentialStore) Len() int {
	return s.size
}

func (s *CredentialStore) add(e credentialEntry) {
	k := keyOf(e.digest)
	s.buckets[k] = append(s.buckets[k], e)
	s.size++
}

func (s *CredentialStore) find(d digest) (credentialEntry, bool) {
	for _, e := range s.buckets[keyOf(d)] {
		if subtle.ConstantTimeCompare(e.digest[:], d[:]) == 1 {
			return e, true
		}
	}
	return credentialEntry{}, false
}

func keyOf(d digest) prefix {
	var k prefix
	copy(k[:], d[:])
	return k
}
