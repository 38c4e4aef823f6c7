// Package session mints and verifies the signed credential that rides in
// the session cookie. Tokens are self-contained: the server keeps no
// session state, so rotating the secret invalidates everything outstanding.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/csemotors/dealership/internal/core/domain"
)

// ErrInvalidToken covers expired, malformed and badly signed tokens.
// Callers must not distinguish the three: clear the cookie and send the
// visitor to the login form.
var ErrInvalidToken = errors.New("session token is invalid")

var signingMethod = jwt.SigningMethodHS256

// Claims is the identity embedded in a session token.
type Claims struct {
	AccountID int         `json:"account_id"`
	FirstName string      `json:"first_name"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime stamped into issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a signed token carrying the account's identity and role.
func (i *Issuer) Issue(account domain.Account) (string, error) {
	now := time.Now()
	claims := &Claims{
		AccountID: account.ID,
		FirstName: account.FirstName,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret)
}

// Verify checks the signature and expiry and returns the decoded claims.
// Only HS256 is accepted; a token declaring any other algorithm fails.
func (i *Issuer) Verify(token string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{signingMethod.Alg()}))

	claims := new(Claims)
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
