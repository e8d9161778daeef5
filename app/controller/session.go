package controller

import (
	"net/http"

	"void-apparel/store"
)

// Session id transport
const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "void_session"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60

// SessionResolver finds the shopper session of a request, starting a new one when needed
type SessionResolver struct {
	registry *store.Registry
	secure   bool
}

// NewSessionResolver creates a SessionResolver. secure marks the session cookie Secure.
func NewSessionResolver(registry *store.Registry, secure bool) *SessionResolver {
	return &SessionResolver{registry: registry, secure: secure}
}

// Resolve returns the session id and store for r. The id is echoed in the
// X-Session-ID response header and the void_session cookie.
func (s *SessionResolver) Resolve(w http.ResponseWriter, r *http.Request) (string, *store.Store) {
	sessionID, st, _ := s.registry.GetOrCreate(SessionIDFromRequest(r))

	w.Header().Set(SessionHeader, sessionID)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID, st
}

// Forget drops the request's session, if any, and expires the cookie
func (s *SessionResolver) Forget(w http.ResponseWriter, r *http.Request) {
	if id := SessionIDFromRequest(r); id != "" {
		s.registry.Delete(id)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// KnownSessionID returns the request's session id when it names a live
// session, otherwise "".
func (s *SessionResolver) KnownSessionID(r *http.Request) string {
	id := SessionIDFromRequest(r)
	if id == "" {
		return ""
	}
	if _, ok := s.registry.Get(id); !ok {
		return ""
	}
	return id
}

// SessionIDFromRequest returns the session id sent with r, or ""
func SessionIDFromRequest(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
