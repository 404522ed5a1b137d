package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/hanifr/storefront/internal/errors"
	inHttp "github.com/hanifr/storefront/internal/http"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/session"
	"github.com/hanifr/storefront/order/otel"
	"github.com/hanifr/storefront/order/service"
)

type OrderController struct {
	service *service.OrderService
}

// AttachOrderController registers order placement and listing. Both require
// a logged-in session, so the router here is the protected one.
func AttachOrderController(protected *mux.Router, service *service.OrderService) {
	controller := OrderController{service: service}

	protected.HandleFunc("/orders", controller.Checkout).Methods(http.MethodPost)
	protected.HandleFunc("/orders", controller.FindOrders).Methods(http.MethodGet)
}

func (t OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController Checkout").
		Logger()

	sess, ok := session.FromContext(c)
	if !ok || !sess.LoggedIn() {
		err := inErrors.ErrSessionNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().
		Str(log.KeySessionID, sess.ID.String()).
		Str(log.KeyUserID, sess.UserID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking out").Logger()
	logger.Info().Msg("checking out")
	c = logger.WithContext(c)
	order, _, err := t.service.Checkout(c, sess, *sess.UserID)
	if err != nil {
		err = fmt.Errorf("failed checking out with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrEmptyCart) {
			statusCode = http.StatusUnprocessableEntity
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Str(log.KeyOrderID, order.ID.String()).Msg("checked out")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "checked out",
		"data":       map[string]interface{}{"order": order},
	})
}

func (t OrderController) FindOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindOrders").
		Logger()

	sess, ok := session.FromContext(c)
	if !ok || !sess.LoggedIn() {
		err := inErrors.ErrSessionNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().
		Str(log.KeySessionID, sess.ID.String()).
		Str(log.KeyUserID, sess.UserID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	orders, count, err := t.service.FindOrders(c, *sess.UserID)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Int64(log.KeyOrder, count).Msg("found orders")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found orders",
		"data": map[string]interface{}{
			"orders": orders,
			"count":  count,
		},
	})
}
