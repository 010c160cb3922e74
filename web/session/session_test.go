package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0Cx7virgqMkZxnxe2XjOog3eJp8V9lPM")

func issue(t *testing.T, claim Claim, secret []byte) string {
	t.Helper()
	token, err := IssueToken(claim, secret)
	require.NoError(t, err)
	return token
}

func TestTokenRoundTrip(t *testing.T) {
	issuedAt := time.Now().UnixMilli()
	token := issue(t, Claim{UserId: "user-1", IssuedAt: issuedAt}, testSecret)

	claim := ValidateToken(token, testSecret)
	require.NotNil(t, claim)
	assert.Equal(t, "user-1", claim.UserId)
	assert.Equal(t, issuedAt, claim.IssuedAt)
}

func TestTokenShape(t *testing.T) {
	token := issue(t, Claim{UserId: "user-1", IssuedAt: time.Now().UnixMilli()}, testSecret)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
	// base64url without padding
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}

func TestValidateTokenAbsentOrMalformed(t *testing.T) {
	for _, token := range []string{
		"",
		"justonepart",
		".",
		"payloadonly.",
		".signatureonly",
		"a.b.c",
		"!!!.###",
	} {
		assert.Nil(t, ValidateToken(token, testSecret), "token %q", token)
	}
}

func TestValidateTokenTamperedBits(t *testing.T) {
	token := issue(t, Claim{UserId: "user-1", IssuedAt: time.Now().UnixMilli()}, testSecret)

	// Flipping any single bit anywhere in the token must invalidate it.
	for i := 0; i < len(token); i++ {
		for bit := uint(0); bit < 8; bit++ {
			mutated := []byte(token)
			mutated[i] ^= 1 << bit
			if string(mutated) == token {
				continue
			}
			assert.Nil(t, ValidateToken(string(mutated), testSecret),
				"byte %d bit %d", i, bit)
		}
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token := issue(t, Claim{UserId: "user-1", IssuedAt: time.Now().UnixMilli()}, testSecret)

	other := []byte("some-other-secret")
	assert.Nil(t, ValidateToken(token, other))
}

func TestValidateTokenSwappedSegments(t *testing.T) {
	token := issue(t, Claim{UserId: "user-1", IssuedAt: time.Now().UnixMilli()}, testSecret)

	payload, signature, _ := strings.Cut(token, ".")
	assert.Nil(t, ValidateToken(signature+"."+payload, testSecret))
}

func TestValidateTokenExpiry(t *testing.T) {
	now := time.Now()
	ttl := time.Duration(MaxAgeSeconds) * time.Second

	justValid := issue(t, Claim{
		UserId:   "user-1",
		IssuedAt: now.Add(-ttl + time.Second).UnixMilli(),
	}, testSecret)
	assert.NotNil(t, ValidateToken(justValid, testSecret))

	justExpired := issue(t, Claim{
		UserId:   "user-1",
		IssuedAt: now.Add(-ttl - time.Second).UnixMilli(),
	}, testSecret)
	assert.Nil(t, ValidateToken(justExpired, testSecret))
}

func TestValidateTokenBadClaims(t *testing.T) {
	// Valid signatures over payloads that do not form a usable claim.
	for name, payload := range map[string]string{
		"empty object":   `{}`,
		"missing userId": `{"issuedAt":123}`,
		"empty userId":   `{"userId":"","issuedAt":123}`,
		"zero issuedAt":  `{"userId":"user-1","issuedAt":0}`,
		"wrong types":    `{"userId":1,"issuedAt":"then"}`,
		"not json":       `garbage`,
		"json array":     `[1,2,3]`,
	} {
		encodedPayload := encoding.EncodeToString([]byte(payload))
		signature := encoding.EncodeToString(sign(encodedPayload, testSecret))
		token := encodedPayload + "." + signature
		assert.Nil(t, ValidateToken(token, testSecret), name)
	}
}
