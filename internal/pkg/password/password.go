package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the one-way credential collaborator. Stored hashes are bcrypt;
// plaintext never leaves the login path.
type Hasher struct {
	cost int
}

func New() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func (h *Hasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *Hasher) Matches(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
