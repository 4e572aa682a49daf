package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2idHasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2idHasher()

	t.Run("produces self-describing PHC string", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
		assert.Len(t, strings.Split(hash, "$"), 6)
	})

	t.Run("salts every call", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("same password")
		require.NoError(t, err)
		second, err := hasher.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestArgon2idHasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := NewArgon2idHasher()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("s3cret-Passw0rd")
		require.NoError(t, err)

		ok, err := hasher.Verify("s3cret-Passw0rd", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("s3cret-Passw0rd")
		require.NoError(t, err)

		ok, err := hasher.Verify("s3cret-Passw0rd!", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed hash is an error, not a mismatch", func(t *testing.T) {
		t.Parallel()

		for _, stored := range []string{
			"",
			"plaintext",
			"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
			"$argon2id$v=19$m=65536,t=1,p=4$!!!$ZGlnZXN0",
			"$argon2id$v=19$bogus$c2FsdA$ZGlnZXN0",
		} {
			ok, err := hasher.Verify("whatever", stored)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedHash, "stored=%q", stored)
		}
	})

	t.Run("verifies hashes with different parameters", func(t *testing.T) {
		t.Parallel()

		// Parameters are read from the stored hash, not assumed. A hash
		// produced with other settings must still verify.
		stored := "$argon2id$v=19$m=32768,t=2,p=2$" + "c2FsdHNhbHRzYWx0c2FsdA" + "$"
		// Re-derive the digest for those parameters via the public API is not
		// possible, so assert the parse path only: wrong password must not
		// error, just mismatch.
		ok, err := hasher.Verify("password", stored+"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
