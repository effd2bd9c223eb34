package account

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a password into its stored form and checks candidates
// against it.
type Hasher interface {
	Hash(plain string) (string, error)
	// Matches reports whether plain corresponds to stored.
	Matches(stored, plain string) bool
}

// PlaintextHasher stores passwords verbatim. It keeps profiles written by
// earlier releases readable and is the default.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(plain string) (string, error) { return plain, nil }

func (PlaintextHasher) Matches(stored, plain string) bool { return stored == plain }

// BcryptHasher stores salted bcrypt hashes.
type BcryptHasher struct {
	// Cost defaults to bcrypt.DefaultCost when zero.
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Matches(stored, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	return err == nil
}

// HasherFor returns the hasher registered under name ("", "plain" or
// "bcrypt").
func HasherFor(name string) (Hasher, error) {
	switch name {
	case "", "plain":
		return PlaintextHasher{}, nil
	case "bcrypt":
		return BcryptHasher{}, nil
	default:
		return nil, errors.New("unknown password hash scheme: " + name)
	}
}
