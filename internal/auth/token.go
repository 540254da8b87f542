package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an access token stays valid after issuance.
const DefaultTokenTTL = 30 * time.Minute

// ErrInvalidToken covers every validation failure: bad signature, malformed
// structure, missing or non-numeric subject, and expiry. Callers get a
// single unauthenticated outcome; the distinction is not leaked.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints and validates HS256-signed bearer tokens carrying a
// numeric subject and an absolute expiry. The signing secret is fixed at
// construction; rotating it invalidates every outstanding token.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds a TokenIssuer. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subject expiring after the issuer's TTL.
func (i *TokenIssuer) Issue(subject uint) (string, error) {
	return i.IssueWithTTL(subject, i.ttl)
}

// IssueWithTTL signs a token for subject with an explicit TTL. A negative
// ttl produces an already-expired token.
func (i *TokenIssuer) IssueWithTTL(subject uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(subject), 10),
		"exp": time.Now().UTC().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate verifies signature and expiry and returns the embedded subject.
// Any failure returns ErrInvalidToken.
func (i *TokenIssuer) Validate(token string) (uint, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
