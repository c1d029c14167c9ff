// Package cryptox hashes account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/lucy1234dev/server/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

// Limits on the parameters CheckPassword accepts from a stored hash.
const (
	maxMemory     uint32 = 1 << 20
	maxIterations uint32 = 16
	minSaltLen           = 8
	minKeyLen            = 16
	maxKeyLen            = 64
)

var b64 = base64.RawStdEncoding

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt using the package's argon2id
// parameters.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword returns an encoded hash of the form
//
//	argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with a fresh random salt. Passwords of any length are accepted.
func HashPassword(password string) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey([]byte(password), salt)
	return fmt.Sprintf("argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// CheckPassword reports whether candidate matches the encoded hash. The
// parameters stored in the hash are used, not the current defaults.
func CheckPassword(encoded, candidate string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, ErrMalformedHash
	}
	if threads == 0 || iterations == 0 || iterations > maxIterations ||
		memory < 8*uint32(threads) || memory > maxMemory {
		return false, ErrMalformedHash
	}

	salt, err := b64.DecodeString(parts[3])
	if err != nil || len(salt) < minSaltLen {
		return false, ErrMalformedHash
	}
	want, err := b64.DecodeString(parts[4])
	if err != nil || len(want) < minKeyLen || len(want) > maxKeyLen {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(candidate), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
