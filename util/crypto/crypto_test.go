package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFormat(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	saltHex, keyHex, found := strings.Cut(digest, ":")
	require.True(t, found)
	assert.Len(t, saltHex, saltSize*2)
	assert.Len(t, keyHex, keySize*2)
}

func TestHashPasswordSaltIsFresh(t *testing.T) {
	first, err := HashPassword("password")
	require.NoError(t, err)
	second, err := HashPassword("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := VerifyPassword("s3cret", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("s3cret ", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	malformed := []string{
		"",
		"no delimiter at all",
		":",
		"abcdef:",
		":abcdef",
		"nothex:aabbcc",
		"aabbcc:nothex",
	}
	for _, digest := range malformed {
		ok, err := VerifyPassword("whatever", digest)
		assert.NoError(t, err, "digest %q", digest)
		assert.False(t, ok, "digest %q", digest)
	}
}

func TestVerifyPasswordTamperedDigest(t *testing.T) {
	digest, err := HashPassword("s3cret")
	require.NoError(t, err)

	// Swap a hex nibble of the derived key.
	last := digest[len(digest)-1]
	replacement := byte('0')
	if last == replacement {
		replacement = '1'
	}
	tampered := digest[:len(digest)-1] + string(replacement)

	ok, err := VerifyPassword("s3cret", tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordTruncatedKey(t *testing.T) {
	digest, err := HashPassword("s3cret")
	require.NoError(t, err)

	// A shortened stored key must short-circuit on the length guard.
	ok, err := VerifyPassword("s3cret", digest[:len(digest)-2])
	require.NoError(t, err)
	assert.False(t, ok)
}
