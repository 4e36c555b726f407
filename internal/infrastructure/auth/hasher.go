package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const dummyPassword = "proptech-dummy-password"

type BcryptPasswordHasher struct {
	cost      int
	dummyHash []byte
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h := &BcryptPasswordHasher{cost: cost}
	// Used by VerifyNothing so unknown emails cost the same as a wrong password.
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		dummy, err = bcrypt.GenerateFromPassword([]byte(dummyPassword), bcrypt.DefaultCost)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to prepare dummy password hash: %v", err))
	}
	h.dummyHash = dummy
	return h
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify returns the same error for a mismatch and a malformed hash.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

// VerifyNothing burns one comparison against a fixed hash and always fails.
func (h *BcryptPasswordHasher) VerifyNothing(password string) error {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
	return fmt.Errorf("password verification failed")
}
