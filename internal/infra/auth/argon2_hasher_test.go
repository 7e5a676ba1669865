package auth

import (
	"strings"
	"testing"

	"soapbox/config"

	"github.com/stretchr/testify/assert"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	password := "pw123456"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))

	// Wrong password must not match
	assert.False(t, hasher.Check("pw1234567", hash))

	// Empty password must not match
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	// Two hashes of the same plaintext differ because the salt is random,
	// yet both verify.
	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestArgon2Hasher_LongPassword(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	// No practical length limit on the plaintext, unlike bcrypt's 72 bytes.
	long := strings.Repeat("correct horse battery staple ", 100)
	hash, err := hasher.Hash(long)
	assert.NoError(t, err)
	assert.True(t, hasher.Check(long, hash))
	assert.False(t, hasher.Check(long+"!", hash))
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	// A malformed hash never panics or errors, it simply does not match.
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$!!!",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$a2V5",
	}
	for _, hash := range malformed {
		assert.False(t, hasher.Check("pw123456", hash), "expected mismatch for hash: %s", hash)
	}
}

func TestArgon2Hasher_ConfiguredParameters(t *testing.T) {
	cfg := &config.Config{
		Argon2: &config.Argon2Config{
			Memory:      32 * 1024,
			Iterations:  2,
			Parallelism: 1,
			SaltLength:  8,
			KeyLength:   16,
		},
	}
	hasher := NewArgon2Hasher(cfg)

	hash, err := hasher.Hash("pw123456")
	assert.NoError(t, err)
	assert.Contains(t, hash, "m=32768,t=2,p=1")
	assert.True(t, hasher.Check("pw123456", hash))

	// Hashes minted under other cost parameters still verify because the
	// parameters are read back from the encoded string.
	other, err := NewArgon2Hasher(nil).Hash("pw123456")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("pw123456", other))
}
