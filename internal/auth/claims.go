package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pushkind/filehub/pkg/storage"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the token payload shared with the auth service.
// The subject is the user ID; hub_id scopes every file operation.
type Claims struct {
	Email string   `json:"email"`
	HubID int64    `json:"hub_id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Identity maps the claims onto the storage layer's caller identity.
func (c *Claims) Identity() storage.Identity {
	return storage.Identity{
		Hub:   storage.HubID(c.HubID),
		Roles: c.Roles,
	}
}
