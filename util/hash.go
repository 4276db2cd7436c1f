package util

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into a stored digest and checks it later
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash string, plaintext string) (bool, error)
}

// NewHasher returns the hasher registered under name
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
}

// SHA256Hasher produces an unsalted hex sha256 digest.
// Equal passwords always give equal digests.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(plaintext string) (string, error) {
	return HashPassword(plaintext), nil
}

func (SHA256Hasher) Verify(hash string, plaintext string) (bool, error) {
	return VerifyHash(hash, plaintext), nil
}

// HashPassword returns the hex sha256 digest of plaintext
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyHash reports whether plaintext hashes to hash
func VerifyHash(hash string, plaintext string) bool {
	return HashPassword(plaintext) == hash
}

// BcryptHasher stores base64 encoded bcrypt hashes
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", fmt.Errorf("cannot hash password: %w", err)
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func (h BcryptHasher) Verify(base64Hash string, plaintext string) (bool, error) {
	hash, err := base64.StdEncoding.DecodeString(base64Hash)
	if err != nil {
		return false, fmt.Errorf("cannot decode base64 hash: %w", err)
	}
	err = bcrypt.CompareHashAndPassword(hash, []byte(plaintext))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot verify password: %w", err)
	}
	return true, nil
}
