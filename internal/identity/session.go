// Package identity bridges the external auth provider: it validates
// session tokens into stable subject ids and looks up profile data the
// internal user record may lack.
package identity

import (
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// SessionParser validates the HMAC-signed session tokens minted by the
// auth provider and extracts the external subject id.
type SessionParser struct {
	secret []byte
}

func NewSessionParser(secret string) *SessionParser {
	return &SessionParser{secret: []byte(secret)}
}

// Parse returns the subject id and display name from a session token.
// Any parse or validation failure maps to ErrUnauthenticated: a caller
// holding a bad token is indistinguishable from one holding none.
func (p *SessionParser) Parse(tokenStr string) (subject, name string, err error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", "", domain.ErrUnauthenticated
	}

	return claims.Subject, claims.Name, nil
}
