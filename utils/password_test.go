package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("secret-pw")
	require.NoError(t, err)

	parts := strings.SplitN(hash, "$", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "pbkdf2:sha256:600000", parts[0])
	assert.Len(t, parts[1], 5, "salt length is fixed")
	assert.Len(t, parts[2], 64, "hex-encoded sha256 digest")
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "p1"))
	assert.False(t, CheckPassword(hash, "p2"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordHonorsEmbeddedIterations(t *testing.T) {
	// A row hashed with a lower cost by an earlier deployment still verifies.
	digest := pbkdf2.Key([]byte("legacy"), []byte("abcde"), 1000, sha256.Size, sha256.New)
	stored := fmt.Sprintf("pbkdf2:sha256:1000$abcde$%s", hex.EncodeToString(digest))

	assert.True(t, CheckPassword(stored, "legacy"))
	assert.False(t, CheckPassword(stored, "not-legacy"))
}

func TestCheckPasswordRejectsMalformed(t *testing.T) {
	for _, stored := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256:600000$onlysalt",
		"bcrypt$salt$digest",
		"pbkdf2:md5:1000$salt$abcd",
		"pbkdf2:sha256:notanumber$salt$abcd",
		"pbkdf2:sha256:600000$salt$nothex",
	} {
		assert.False(t, CheckPassword(stored, "pw"), "stored=%q", stored)
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
