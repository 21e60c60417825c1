package encrypter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"challenge-admin/pkg/encrypter"
)

func TestHashAndCompare(t *testing.T) {
	enc := encrypter.New(bcrypt.MinCost)

	hash, err := enc.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, enc.ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, enc.ComparePassword(hash, "wrong"), encrypter.ErrMismatch)

	err = enc.ComparePassword("not-a-hash", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, encrypter.ErrMismatch)
}
