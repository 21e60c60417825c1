// Package encrypter hashes and checks user passwords.
package encrypter

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Encrypter hashes and verifies passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

var ErrMismatch = errors.New("password mismatch")

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt Encrypter. cost <= 0 selects bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return bcryptEncrypter{cost: cost}
}

func (e bcryptEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (e bcryptEncrypter) ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}
