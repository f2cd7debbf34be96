package register

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/moviesir-api/internal/domain"
)

// CodeStore holds the currently valid verification code per email address.
// It is an in-process cache by design: codes are ephemeral, never expire and
// survive until overwritten by a later Issue or a process restart. A second
// instance of the API will not see this instance's codes — a known
// deployment limitation.
//
// Construct one per process and inject it into the register service; tests
// get isolation from a fresh instance each.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewCodeStore() *CodeStore {
	return &CodeStore{codes: make(map[string]string)}
}

// Issue generates a uniformly random 6-digit code (leading zeros allowed),
// stores it for the email overwriting any prior entry, and returns it.
func (s *CodeStore) Issue(email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	s.codes[email] = code
	s.mu.Unlock()
	return code, nil
}

// Peek returns the stored code for the email, if any.
func (s *CodeStore) Peek(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[email]
	return code, ok
}

// Check reports whether candidate matches the stored code. The entry stays
// in place regardless of the outcome; a code remains checkable until the
// next Issue replaces it.
func (s *CodeStore) Check(email, candidate string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[email]
	if !ok {
		return false, fmt.Errorf("no code issued for %s: %w", email, domain.ErrNotIssued)
	}
	return code == candidate, nil
}
