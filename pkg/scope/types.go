package scope

import (
	"github.com/golang-jwt/jwt/v5"
)

// Payload is the identity carried in an access token.
type Payload struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
