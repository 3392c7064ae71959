package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT payload identifying a resident.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 tokens.
type Signer struct {
	Key    []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// NewSigner creates a signer; tokens expire after ttl.
func NewSigner(key, issuer string, ttl time.Duration) *Signer {
	return &Signer{Key: []byte(key), Issuer: issuer, TTL: ttl, Now: time.Now}
}

// Issue signs an access token for the user.
func (s *Signer) Issue(userID, email string) (string, time.Time, error) {
	now := s.Now()
	exp := now.Add(s.TTL)
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Key)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Parse validates a token and returns claims.
func (s *Signer) Parse(tokenStr string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.Now),
	}
	if s.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.Issuer))
	}
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.Key, nil
	}, opts...)
	if err != nil {
		return Claims{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return Claims{}, errors.New("token has no user")
	}
	return *claims, nil
}
