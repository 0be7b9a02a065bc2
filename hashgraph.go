// Package hashgraph provides the signature-collection bookkeeping that
// surrounds the pure key-list authorization predicate: which signature
// slots have been observed for a given key list while a threshold policy
// is being satisfied.
package hashgraph

import (
	"errors"
	"sort"
	"sync"

	"github.com/HbarSuite/hashgraph-types-sub004/keys"
)

// SignatureStore tracks observed signer indices per key list in a
// thread-safe manner. The authorization decision itself stays with
// keys.KeyList.IsAuthorized; the store only accumulates the input to it.
type SignatureStore struct {
	mu     sync.RWMutex
	signed map[string]map[int]struct{}
}

// NewSignatureStore initializes an empty SignatureStore.
func NewSignatureStore() *SignatureStore {
	return &SignatureStore{
		signed: make(map[string]map[int]struct{}),
	}
}

// Record notes that the key at the given index has signed for listID.
// Recording the same index twice is a no-op, matching the set semantics of
// the authorization predicate.
func (s *SignatureStore) Record(listID string, index int) error {
	if listID == "" {
		return errors.New("list id cannot be empty")
	}
	if index < 0 {
		return errors.New("signer index cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signed[listID] == nil {
		s.signed[listID] = make(map[int]struct{})
	}
	s.signed[listID][index] = struct{}{}

	return nil
}

// Signed returns the distinct signer indices observed for listID, sorted.
func (s *SignatureStore) Signed(listID string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := make([]int, 0, len(s.signed[listID]))
	for index := range s.signed[listID] {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	return indices
}

// Authorized reports whether the signatures collected for listID satisfy
// the key list's threshold policy.
func (s *SignatureStore) Authorized(listID string, list *keys.KeyList) bool {
	return list.IsAuthorized(s.Signed(listID))
}

// Reset discards the signatures collected for listID.
func (s *SignatureStore) Reset(listID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.signed, listID)
}
