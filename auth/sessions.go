package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName    = "inkline_session"
	sessionUserKey = "user_id"
)

// Sessions is the login-state half of the identity provider: a cookie
// session holding the authenticated user id.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(secret string) *Sessions {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 16, // 16 hours
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// CurrentUserId returns the logged-in user id, if any.
func (s *Sessions) CurrentUserId(r *http.Request) (int64, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	userId, ok := session.Values[sessionUserKey].(int64)
	return userId, ok
}

func (s *Sessions) Login(w http.ResponseWriter, r *http.Request, userId int64) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values[sessionUserKey] = userId
	return session.Save(r, w)
}

func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
