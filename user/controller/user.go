package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hanifr/storefront/internal/common"
	inErrors "github.com/hanifr/storefront/internal/errors"
	inHttp "github.com/hanifr/storefront/internal/http"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/session"
	"github.com/hanifr/storefront/user/otel"
	"github.com/hanifr/storefront/user/service"
	"github.com/hanifr/storefront/user/pkg/request"
)

type UserController struct {
	service  *service.UserService
	sessions session.Store
}

// AttachUserController registers login and logout on the public router and
// user registration on the protected one.
func AttachUserController(
	public, protected *mux.Router,
	service *service.UserService,
	sessions session.Store,
) {
	controller := UserController{service: service, sessions: sessions}

	public.HandleFunc("/login", controller.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", controller.Login).Methods(http.MethodPost)
	public.HandleFunc("/logout", controller.Logout).Methods(http.MethodDelete)
	protected.HandleFunc("/users", controller.Register).Methods(http.MethodPost)
}

// LoginPage renders the login form data. The session's notice is shown once
// and cleared.
func (t UserController) LoginPage(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController LoginPage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController LoginPage").
		Logger()

	notice := ""
	if sess, ok := session.FromContext(c); ok {
		var err error
		notice, _, err = t.sessions.ConsumeNotice(c, sess)
		if err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "login",
		"data":       map[string]interface{}{"notice": notice},
	})
}

// Login authenticates the posted credentials. Success attaches the user to
// the session and redirects to the intended URL recorded before login, or to
// the catalog. Failure leaves a notice and redirects back to the login page
// without telling which credential was wrong.
func (t UserController) Login(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Login").
		Logger()

	sess, ok := session.FromContext(c)
	if !ok {
		err := inErrors.ErrSessionNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeySessionID, sess.ID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "logging in").
		Str(log.KeyUsername, reqBody.Name).
		Logger()
	logger.Info().Msg("logging in")
	c = logger.WithContext(c)
	userID, err := t.service.Login(c, reqBody)
	if err != nil {
		if errors.Is(err, inErrors.ErrInvalidCredentials) {
			logger.Info().Msg("login failed, redirecting to login page")
			sess.Notice = common.NoticeInvalidCredentials
			if err := t.sessions.Save(c, sess); err != nil {
				inOtel.RecordError(err, span)
				logger.Error().Err(err).Msg(err.Error())
			}
			http.Redirect(w, r, common.LoginPath, http.StatusSeeOther)
			return
		}
		err = fmt.Errorf("failed logging in with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyUserID, userID.String()).Logger()
	logger.Info().Msg("logged in")

	logger = logger.With().Str(log.KeyProcess, "saving session").Logger()
	redirectTo := sess.RedirectBackOr(common.DefaultLandingPath)
	sess.UserID = &userID
	sess.IntendedURL = ""
	if err := t.sessions.Save(c, sess); err != nil {
		err = fmt.Errorf("failed saving session with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Str(log.KeyRedirectTo, redirectTo).Msg("saved session, redirecting")

	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

// Logout detaches the user from the session. The cart stays so the client
// keeps its items across logins. Logging out while logged out is a no-op.
func (t UserController) Logout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Logout").
		Logger()

	sess, ok := session.FromContext(c)
	if !ok {
		err := inErrors.ErrSessionNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeySessionID, sess.ID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "logging out").Logger()
	logger.Info().Msg("logging out")
	sess.UserID = nil
	sess.Notice = common.NoticeLoggedOut
	if err := t.sessions.Save(c, sess); err != nil {
		err = fmt.Errorf("failed saving session with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("logged out")

	http.Redirect(w, r, common.RootPath, http.StatusSeeOther)
}

func (t UserController) Register(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Register").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.RegisterRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "registering user").
		Str(log.KeyUsername, reqBody.Name).
		Logger()
	logger.Info().Msg("registering user")
	c = logger.WithContext(c)
	user, err := t.service.Register(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed registering user with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("registered user")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "registered user",
		"data":       map[string]interface{}{"user": user},
	})
}
