// Package session implements the stateless signed session tokens used for
// authentication. A token is base64url(json(claim)) + "." + base64url(hmac),
// signed with HMAC-SHA256; nothing is stored server side.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/database/model"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	// MaxAgeSeconds is the fixed session lifetime: 30 days from issuance.
	MaxAgeSeconds = 60 * 60 * 24 * 30

	CookieName = "taskdeck_session"

	loginUserKey = "LOGIN_USER"
)

// Strict decoding rejects non-canonical trailing bits, so no two distinct
// encoded segments decode to the same bytes.
var encoding = base64.RawURLEncoding.Strict()

// Claim is the payload carried by a session token. IssuedAt is in epoch
// milliseconds. Field order is the canonical wire order.
type Claim struct {
	UserId   string `json:"userId"`
	IssuedAt int64  `json:"issuedAt"`
}

func sign(payload string, secret []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

// IssueToken serializes and signs the claim.
func IssueToken(claim Claim, secret []byte) (string, error) {
	raw, err := json.Marshal(claim)
	if err != nil {
		return "", err
	}
	encodedPayload := encoding.EncodeToString(raw)
	signature := encoding.EncodeToString(sign(encodedPayload, secret))
	return encodedPayload + "." + signature, nil
}

// ValidateToken checks the token signature and expiry and returns the claim,
// or nil for any malformed, tampered, expired or absent token. The signature
// is verified before the payload is parsed, so a bad payload and a bad
// signature are indistinguishable to the caller.
func ValidateToken(token string, secret []byte) *Claim {
	if token == "" {
		return nil
	}

	encodedPayload, encodedSignature, found := strings.Cut(token, ".")
	if !found || encodedPayload == "" || encodedSignature == "" {
		return nil
	}
	if strings.Contains(encodedSignature, ".") {
		return nil
	}

	expected := sign(encodedPayload, secret)
	provided, err := encoding.DecodeString(encodedSignature)
	if err != nil {
		return nil
	}
	if len(expected) != len(provided) {
		return nil
	}
	if !hmac.Equal(expected, provided) {
		return nil
	}

	raw, err := encoding.DecodeString(encodedPayload)
	if err != nil {
		return nil
	}
	claim := &Claim{}
	if err := json.Unmarshal(raw, claim); err != nil {
		return nil
	}
	if claim.UserId == "" || claim.IssuedAt <= 0 {
		return nil
	}

	if time.Now().UnixMilli()-claim.IssuedAt > int64(MaxAgeSeconds)*1000 {
		return nil
	}

	return claim
}

// SetLoginCookie issues a fresh token for the user and stores it in the
// session cookie.
func SetLoginCookie(c *gin.Context, userId string, secret []byte) error {
	token, err := IssueToken(Claim{UserId: userId, IssuedAt: time.Now().UnixMilli()}, secret)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, MaxAgeSeconds, "/", "", false, true)
	return nil
}

// ClearLoginCookie removes the session cookie.
func ClearLoginCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// GetTokenClaim validates the session cookie of the request, if any.
func GetTokenClaim(c *gin.Context, secret []byte) *Claim {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return ValidateToken(token, secret)
}

// SetLoginUser stashes the authenticated user on the request context.
func SetLoginUser(c *gin.Context, user *model.User) {
	c.Set(loginUserKey, user)
}

// GetLoginUser returns the authenticated user of the request, or nil.
func GetLoginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(loginUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

// IsLogin reports whether the request carries an authenticated user.
func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}
