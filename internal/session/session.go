package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind the client's session cookie. It
// carries the logged-in user (nil while anonymous), the lazily created cart,
// the URL the client originally asked for before being sent to login, and a
// one-shot notice for the next rendered page.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id"`
	CartID      *uuid.UUID `json:"cart_id"`
	IntendedURL string     `json:"intended_url"`
	Notice      string     `json:"notice"`
	CreatedAt   time.Time  `json:"created_at"`
}

func New() Session {
	return Session{ID: uuid.New(), CreatedAt: time.Now()}
}

func (s Session) LoggedIn() bool {
	return s.UserID != nil
}

// RedirectBackOr resolves the post-login destination: the recorded intended
// URL when one exists, otherwise the given default.
func (s Session) RedirectBackOr(def string) string {
	if s.IntendedURL != "" {
		return s.IntendedURL
	}
	return def
}

type sessionKey struct{}

func AttachToContext(c context.Context, s Session) context.Context {
	return context.WithValue(c, sessionKey{}, s)
}

func FromContext(c context.Context) (Session, bool) {
	s, ok := c.Value(sessionKey{}).(Session)
	return s, ok
}
