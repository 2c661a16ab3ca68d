package server

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	sessionCookie = "exifmeta_session"
	sessionMaxAge = time.Hour
)

// sessions keeps the logged in user in a signed cookie.
type sessions struct {
	codec *securecookie.SecureCookie
}

func newSessions(secret string) *sessions {
	codec := securecookie.New([]byte(secret), nil)
	codec.MaxAge(int(sessionMaxAge / time.Second))
	return &sessions{codec: codec}
}

func (s *sessions) save(w http.ResponseWriter, u User) error {
	value, err := s.codec.Encode(sessionCookie, u)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(sessionMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// user returns the user of the request's session, if any.
func (s *sessions) user(r *http.Request) (User, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return User{}, false
	}
	var u User
	if err := s.codec.Decode(sessionCookie, c.Value, &u); err != nil || u.Username == "" {
		return User{}, false
	}
	return u, true
}

func (s *sessions) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
