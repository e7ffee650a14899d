// Package session implements the client-held session cookie. The cookie carries
// the safe user projection; the server keeps no session state and trusts any
// value its codec can decode.
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"propal/internal/model"
)

// ErrMalformedSession is returned when a cookie value cannot be decoded.
var ErrMalformedSession = errors.New("malformed session")

// Codec converts between the safe user projection and a cookie value.
type Codec interface {
	Encode(user model.SafeUser) (string, error)
	Decode(value string) (*model.SafeUser, error)
}

// JSONCodec stores the projection as percent-encoded JSON text. Spaces become
// %20 and '+' stays literal, matching encodeURIComponent in the browser.
type JSONCodec struct{}

// Encode implements Codec.
func (JSONCodec) Encode(user model.SafeUser) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	return url.PathEscape(string(payload)), nil
}

// Decode implements Codec. Any JSON object is accepted.
func (JSONCodec) Decode(value string) (*model.SafeUser, error) {
	raw, err := url.PathUnescape(value)
	if err != nil {
		return nil, ErrMalformedSession
	}
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrMalformedSession
	}

	var user model.SafeUser
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return nil, ErrMalformedSession
	}
	return &user, nil
}

// Claims carries the projection inside a signed token.
type Claims struct {
	User model.SafeUser `json:"user"`
	jwt.RegisteredClaims
}

// JWTCodec signs the projection with HS256. The token is still held only by the
// client; signing makes tampering detectable without any server-side state.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTCodec creates a codec whose tokens expire after ttl.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode implements Codec.
func (c *JWTCodec) Encode(user model.SafeUser) (string, error) {
	now := c.now()
	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode implements Codec.
func (c *JWTCodec) Decode(value string) (*model.SafeUser, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrMalformedSession
	}
	return &claims.User, nil
}
