package httpapi

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	roleCustomer = "customer"
	roleAdmin    = "admin"
)

type claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Server) issueToken(userID int64, role string) (string, error) {
	c := claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ajuman-holidays",
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Server) parseToken(tokenStr string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := parsed.Claims.(*claims); ok && parsed.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// HashPassword digests a password for storage. Also used by the seed command.
func HashPassword(pw string) string {
	h := sha256.Sum256([]byte(pw))
	return base64.StdEncoding.EncodeToString(h[:])
}

func checkPassword(hash, pw string) bool { return hash == HashPassword(pw) }
