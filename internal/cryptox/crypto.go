// Package cryptox implements password hashing for stored user credentials.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"golang.org/x/crypto/scrypt"
)

const (
	// SaltSize is the length of a freshly generated per-user salt.
	SaltSize = 32
	// KeySize is the length of the derived password hash.
	KeySize = 64
)

// Params are the scrypt cost parameters. N must be a power of two > 1.
type Params struct {
	N int
	R int
	P int
}

// DefaultParams are the interactive-login parameters recommended by the
// scrypt paper.
var DefaultParams = Params{N: 1 << 14, R: 8, P: 1}

// NewSalt returns a new random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives a KeySize-byte hash from password and salt.
func HashPassword(password string, salt []byte, p Params) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, p.N, p.R, p.P, KeySize)
}

// VerifyPassword recomputes the hash for password with salt and compares it
// with stored in constant time.
func VerifyPassword(password string, salt, stored []byte, p Params) (bool, error) {
	candidate, err := HashPassword(password, salt, p)
	if err != nil {
		return false, err
	}
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(stored, candidate) == 1, nil
}
