package order

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
)

const SecretLength = 32

// Secret is the hash-lock preimage. It stays with the maker until the
// destination leg is claimable and must never be logged or persisted in
// plaintext. The randomness source is injected so tests can be deterministic.
type Secret [SecretLength]byte

func GenerateSecret(rand io.Reader) (*Secret, error) {
	s := new(Secret)
	if _, err := io.ReadFull(rand, s[:]); err != nil {
		return nil, fmt.Errorf("failed to read secret entropy: %w", err)
	}

	return s, nil
}

// Hash derives the disclosable commitment. Deterministic, no internal salt;
// order-level uniqueness comes from Order.Salt.
func (s *Secret) Hash() SecretHash {
	var h SecretHash
	copy(h[:], crypto.Keccak256(s[:]))
	return h
}

func (s *Secret) Hex() string {
	return fmt.Sprintf("0x%x", s[:])
}

// Zero wipes the preimage. Called when an attempt is cancelled, rebuilt or
// evicted from the session store.
func (s *Secret) Zero() {
	for i := range s {
		s[i] = 0
	}
}

// SecretHash is safe to disclose; the relayer and escrow verify a revealed
// secret against it without learning the secret in advance.
type SecretHash [32]byte

func (h SecretHash) Hex() string {
	return fmt.Sprintf("0x%x", h[:])
}
