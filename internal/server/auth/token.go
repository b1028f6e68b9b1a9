package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vibevault/vibevault/internal/common"
)

// Claims carries the standard registered claims; the authenticated
// username travels in the Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token binding the subject for
// validityDuration from now. The token is self-contained: no server-side
// state is created.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies tokenString against secretKey and returns
// the embedded subject. Verification is a pure function of the token, the
// key, and the current time. Failures are classified as exactly one of
// common.ErrTokenMalformed, common.ErrTokenSignatureInvalid, or
// common.ErrTokenExpired.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", classifyTokenError(err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.Subject, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenSignatureInvalid
	default:
		return common.ErrTokenMalformed
	}
}
