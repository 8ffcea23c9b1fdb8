// Package identity turns an inbound credential into a verified subject.
// It carries no business logic: tenant resolution happens downstream.
package identity

import (
	"errors"
	"fmt"
	"time"

	"salonledger-backend/apierror"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified output of a credential check.
type Claims struct {
	Subject string
	Email   string
	Phone   string
}

// CognitoVerifier validates RS256 bearer tokens against the user pool's
// published key set. Checks run in a fixed order: key lookup by kid,
// signature, expiration, then audience (only when a client id is
// configured).
type CognitoVerifier struct {
	jwks     *JWKSCache
	clientID string
}

func NewCognitoVerifier(region, userPoolID, clientID string, jwksTTL time.Duration) *CognitoVerifier {
	url := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/jwks.json", region, userPoolID)
	return &CognitoVerifier{
		jwks:     NewJWKSCache(url, jwksTTL),
		clientID: clientID,
	}
}

func (v *CognitoVerifier) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.jwks.Key(kid)
	}, jwt.WithValidMethods([]string{"RS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, apierror.ErrTokenExpired
		}
		return Claims{}, apierror.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, apierror.ErrInvalidToken
	}

	if v.clientID != "" && !v.audienceMatches(claims) {
		return Claims{}, apierror.ErrAudienceMismatch
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Claims{}, apierror.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	phone, _ := claims["phone_number"].(string)
	return Claims{Subject: sub, Email: email, Phone: phone}, nil
}

// Cognito id tokens carry the app client id in "aud"; access tokens carry
// it in "client_id". Either satisfies the audience check.
func (v *CognitoVerifier) audienceMatches(claims jwt.MapClaims) bool {
	if aud, _ := claims["aud"].(string); aud == v.clientID {
		return true
	}
	if clientID, _ := claims["client_id"].(string); clientID == v.clientID {
		return true
	}
	return false
}
