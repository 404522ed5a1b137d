package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/repository"
	"github.com/hanifr/storefront/user/otel"
	"github.com/hanifr/storefront/user/pkg/request"
	"github.com/hanifr/storefront/user/pkg/response"
)

type UserService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewUserService(pool *pgxpool.Pool, queries *repository.Queries) UserService {
	return UserService{pool: pool, queries: queries}
}

// Login authenticates the named user. An unknown name and a wrong password
// both come back as ErrInvalidCredentials so the caller cannot tell which
// half failed.
func (svc UserService) Login(
	c context.Context,
	param request.LoginRequest,
) (uuid.UUID, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyUsername, param.Name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user in db").Logger()
	logger.Trace().Msg("finding user in db")
	user, err := svc.queries.FindUserByName(c, param.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrInvalidCredentials
			logger.Info().Err(err).Msg("user not found")
			return uuid.Nil, err
		}
		err = fmt.Errorf("failed finding user in db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return uuid.Nil, err
	}
	logger.Trace().Msg("found user in db")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Trace().Msg("verifying password")
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(param.Password))
	if err != nil {
		err = inErrors.ErrInvalidCredentials
		logger.Info().Err(err).Msg("password mismatch")
		return uuid.Nil, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("verified password")

	return user.ID, nil
}

func (svc UserService) Register(
	c context.Context,
	param request.RegisterRequest,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Str(log.KeyUsername, param.Name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user in db").Logger()
	logger.Trace().Msg("finding user in db")
	_, err := svc.queries.FindUserByName(c, param.Name)
	if err == nil {
		err = fmt.Errorf("username=%s already exists", param.Name)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding user in db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Trace().Msg("username is available")

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	logger.Trace().Msg("hashing password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "inserting user to db").Logger()
	logger.Info().Msg("inserting user to db")
	user, err := svc.queries.InsertUser(
		c,
		repository.InsertUserParams{Name: param.Name, PasswordHash: string(hashed)},
	)
	if err != nil {
		err = fmt.Errorf("failed inserting user to db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()
	logger.Info().Msg("inserted user to db")

	return response.User{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Time,
		UpdatedAt: user.UpdatedAt.Time,
	}, nil
}
