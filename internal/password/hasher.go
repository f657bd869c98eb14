// Package password provides one-way credential hashing and verification
// built on bcrypt. Hashes are self-describing: the cost factor and salt are
// embedded in the output, so verification never depends on external
// configuration.
package password

import (
	"errors"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmptySecret is returned by Hash when the input secret is empty.
var ErrEmptySecret = errors.New("empty secret cannot be hashed")

// Hasher hashes and verifies user passwords with bcrypt at a fixed cost.
// All state is read-only after construction; Hasher is safe for concurrent use.
type Hasher struct {
	cost   int
	logger *logger.Logger
}

// NewHasher constructs a Hasher with the given bcrypt cost factor.
// Costs outside bcrypt's supported range are clamped to the default cost so
// a misconfigured value can never silently disable hashing.
func NewHasher(cost int, logger *logger.Logger) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		logger.Warn().Int("cost", cost).Int("fallback", bcrypt.DefaultCost).
			Msg("bcrypt cost out of range, falling back to default")
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost, logger: logger}
}

// Hash produces the bcrypt hash of secret.
// Returns [ErrEmptySecret] for empty input; any other failure comes from the
// bcrypt primitive itself (e.g. a secret longer than 72 bytes).
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether secret matches the bcrypt hash hashed.
//
// Verify never fails: a malformed hash value is logged at warn level and
// treated as a mismatch. Comparison of a well-formed hash is constant-time
// with respect to a wrong guess, as guaranteed by bcrypt.
func (h *Hasher) Verify(secret, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
	if err == nil {
		return true
	}

	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		h.logger.Warn().Err(err).Msg("password verification against malformed hash")
	}

	return false
}
