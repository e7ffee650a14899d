package session

import (
	"net/http"
	"time"

	"propal/internal/model"
)

// Manager mints and clears session cookies.
type Manager struct {
	Name  string
	TTL   time.Duration
	Codec Codec
}

// NewManager builds a Manager for the named cookie.
func NewManager(name string, ttl time.Duration, codec Codec) *Manager {
	return &Manager{Name: name, TTL: ttl, Codec: codec}
}

// NewCookie returns a cookie carrying user. It is readable from browser
// scripts, which restore the signed-in state from it on page load.
func (m *Manager) NewCookie(user model.SafeUser, now time.Time) (*http.Cookie, error) {
	value, err := m.Codec.Encode(user)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     m.Name,
		Value:    value,
		Path:     "/",
		Expires:  now.Add(m.TTL),
		MaxAge:   int(m.TTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ExpiredCookie returns a cookie that makes the browser drop the session.
func (m *Manager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}
