// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"soapbox/config"
	"soapbox/internal/domain/service"

	"github.com/pkg/errors"
)

// Argon2id parameters used when no configuration is supplied.
const (
	defaultArgon2Memory      = 64 * 1024
	defaultArgon2Iterations  = 3
	defaultArgon2Parallelism = 2
	defaultArgon2SaltLength  = 16
	defaultArgon2KeyLength   = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using Argon2id.
// Unlike bcrypt it imposes no practical length limit on the plaintext, and the
// encoded output embeds the salt and cost parameters.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memory:      defaultArgon2Memory,
		iterations:  defaultArgon2Iterations,
		parallelism: defaultArgon2Parallelism,
		saltLength:  defaultArgon2SaltLength,
		keyLength:   defaultArgon2KeyLength,
	}

	if cfg != nil && cfg.Argon2 != nil {
		if cfg.Argon2.Memory > 0 {
			h.memory = cfg.Argon2.Memory
		}
		if cfg.Argon2.Iterations > 0 {
			h.iterations = cfg.Argon2.Iterations
		}
		if cfg.Argon2.Parallelism > 0 {
			h.parallelism = cfg.Argon2.Parallelism
		}
		if cfg.Argon2.SaltLength > 0 {
			h.saltLength = cfg.Argon2.SaltLength
		}
		if cfg.Argon2.KeyLength > 0 {
			h.keyLength = cfg.Argon2.KeyLength
		}
	}

	return h
}

// Hash generates a salted Argon2id hash in the standard PHC string format:
// $argon2id$v=19$m=65536,t=3,p=2$<base64 salt>$<base64 key>
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded Argon2id hash in
// constant time. A malformed hash is treated as a mismatch, never an error.
func (h *argon2Hasher) Check(password, hash string) bool {
	memory, iterations, parallelism, salt, key, ok := decodeArgon2Hash(hash)
	if !ok {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

// decodeArgon2Hash parses the PHC string produced by Hash. The stored
// parameters take precedence over the hasher's own, so hashes survive cost
// retuning.
func decodeArgon2Hash(hash string) (memory, iterations uint32, parallelism uint8, salt, key []byte, ok bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, false
	}
	if memory == 0 || iterations == 0 || parallelism == 0 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return memory, iterations, parallelism, salt, key, true
}
