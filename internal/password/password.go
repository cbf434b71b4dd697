// Package password hashes and checks user passwords with bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used by Hash.
var Cost = bcrypt.DefaultCost

// digest maps a password of any length to 64 bytes, under bcrypt's 72-byte input limit.
func digest(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	dst := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(dst, sum[:])
	return dst
}

func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(digest(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches hash. A malformed hash never matches.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(plain)) == nil
}
