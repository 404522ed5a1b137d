package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hanifr/storefront/internal/common"
	inHttp "github.com/hanifr/storefront/internal/http"
	"github.com/hanifr/storefront/internal/log"
	"github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/session"
)

// Session resolves the request's session from the signed cookie, creating a
// fresh anonymous session when the cookie is absent, expired, or refers to a
// record that no longer exists.
func Session(store session.Store, secretKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, span := otel.Tracer.Start(r.Context(), "middleware Session")
			defer span.End()

			logger := zerolog.Ctx(c).
				With().
				Str(log.KeyTag, "middleware Session").
				Logger()

			sess, err := resolveSession(c, store, secretKey, r)
			if err != nil {
				logger.Debug().Err(err).Msg("starting new session")
				sess = session.New()
				if err := store.Save(c, sess); err != nil {
					otel.RecordError(err, span)
					logger.Error().Err(err).Msg(err.Error())
					inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
						"status":     "failed",
						"statusCode": http.StatusInternalServerError,
						"message":    "Internal Server Error",
					})
					return
				}
				signed, err := session.SignToken(sess.ID, secretKey)
				if err != nil {
					otel.RecordError(err, span)
					logger.Error().Err(err).Msg(err.Error())
					inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
						"status":     "failed",
						"statusCode": http.StatusInternalServerError,
						"message":    "Internal Server Error",
					})
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     common.SessionCookieName,
					Value:    signed,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int((30 * 24 * time.Hour).Seconds()),
				})
			}

			logger = logger.With().Str(log.KeySessionID, sess.ID.String()).Logger()
			logger.Trace().Msg("resolved session")

			c = session.AttachToContext(c, sess)
			c = logger.WithContext(c)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}

func resolveSession(
	c context.Context,
	store session.Store,
	secretKey string,
	r *http.Request,
) (session.Session, error) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return session.Session{}, err
	}
	sessionID, err := session.VerifyToken(cookie.Value, secretKey)
	if err != nil {
		return session.Session{}, err
	}
	return store.Find(c, sessionID)
}
