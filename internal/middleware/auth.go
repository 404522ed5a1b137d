package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hanifr/storefront/internal/common"
	"github.com/hanifr/storefront/internal/log"
	"github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/session"
)

// RequireLogin blocks anonymous sessions. The blocked request's URL is
// recorded on the session so a later successful login can redirect back to
// it; the client is sent to the login page, never a bare 401.
func RequireLogin(store session.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, span := otel.Tracer.Start(r.Context(), "middleware RequireLogin")
			defer span.End()

			logger := zerolog.Ctx(c).
				With().
				Str(log.KeyTag, "middleware RequireLogin").
				Logger()

			sess, ok := session.FromContext(c)
			if ok && sess.LoggedIn() {
				next.ServeHTTP(w, r.WithContext(c))
				return
			}

			logger = logger.With().
				Str(log.KeyProcess, "recording intended url").
				Str(log.KeyRequestURI, r.RequestURI).
				Logger()
			logger.Info().Msg("blocking anonymous request, redirecting to login")

			sess.IntendedURL = r.RequestURI
			sess.Notice = common.NoticeLoginRequired
			if err := store.Save(c, sess); err != nil {
				otel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
			}
			http.Redirect(w, r, common.LoginPath, http.StatusSeeOther)
		})
	}
}
