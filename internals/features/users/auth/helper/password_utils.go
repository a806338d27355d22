package helpers

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"mantenimiento_backend/internals/configs"

	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

const minPasswordLen = 6

// ValidateCredentials checks the shape of a username/password pair before
// any store access.
func ValidateCredentials(username, password string) error {
	if !usernamePattern.MatchString(username) {
		return errors.New("username must be 3-50 characters of letters, digits, '.', '_' or '-'")
	}
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if len(password) > 72 {
		return errors.New("password must be at most 72 bytes")
	}
	return nil
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bcryptCost() int {
	cost := configs.GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// DummyHash is compared against when the username does not exist, so a
// failed login costs the same whether or not the account is real.
func DummyHash() string {
	dummyOnce.Do(func() {
		h, err := HashPassword("not-a-real-password")
		if err != nil {
			h = "$2a$10$7EqJtq98hPqEX7fNZaFWoO5p1Y7Q0ZQhQ9v3z0z3q6b8dVJ0mQ2yS"
		}
		dummyHash = h
	})
	return dummyHash
}
