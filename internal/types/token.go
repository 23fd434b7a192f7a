package types

import "github.com/google/uuid"

// TokenClaims is the session identity carried in a JWT.
type TokenClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
