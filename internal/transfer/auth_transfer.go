package transfer

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the payload of the session cookie.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
