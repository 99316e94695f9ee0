package handlers

import (
	"net/http"

	"github.com/pushkind/filehub/internal/auth"
)

// SessionHandler manages the session cookie lifecycle. Tokens are issued by
// the auth service; this side only clears them.
type SessionHandler struct {
	cookieDomain string
}

// NewSessionHandler creates the handler. cookieDomain scopes the cleared
// cookie and must match the domain the auth service set it for.
func NewSessionHandler(cookieDomain string) *SessionHandler {
	return &SessionHandler{cookieDomain: cookieDomain}
}

// Logout handles POST /logout: it expires the session cookie and sends the
// browser back to the site root.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
