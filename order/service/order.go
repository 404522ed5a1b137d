package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/repository"
	"github.com/hanifr/storefront/internal/session"
	"github.com/hanifr/storefront/order/otel"
	"github.com/hanifr/storefront/order/pkg/response"
)

type OrderService struct {
	pool     *pgxpool.Pool
	queries  *repository.Queries
	sessions session.Store
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	sessions session.Store,
) OrderService {
	return OrderService{pool: pool, queries: queries, sessions: sessions}
}

// Checkout turns the session's cart into an order for the given user. The
// order, its items, and the cart deletion commit in one transaction; the
// cart id is detached from the session only after the commit succeeds.
func (svc OrderService) Checkout(
	c context.Context,
	sess session.Session,
	userID uuid.UUID,
) (response.Order, session.Session, error) {
	c, span := otel.Tracer.Start(c, "OrderService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService Checkout").
		Str(log.KeySessionID, sess.ID.String()).
		Str(log.KeyUserID, userID.String()).
		Logger()

	if sess.CartID == nil {
		err := inErrors.ErrEmptyCart
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	cartID := *sess.CartID
	logger = logger.With().Str(log.KeyCartID, cartID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "finding line items").Logger()
	logger.Trace().Msg("finding line items")
	lineItems, err := svc.queries.FindLineItemsByCartId(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed finding line items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	if len(lineItems) == 0 {
		err = inErrors.ErrEmptyCart
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Int(log.KeyLineItem, len(lineItems)).Msg("found line items")

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := svc.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "rolling back transaction").Logger()
		err := tx.Rollback(c)
		if err != nil {
			if errors.Is(err, pgx.ErrTxClosed) {
				return
			}
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("rolled back transaction")
	}()
	qtx := svc.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	order, err := qtx.InsertOrder(c, userID)
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("inserting order items")
	params := make([]repository.InsertOrderItemsParams, len(lineItems))
	for i, li := range lineItems {
		params[i] = repository.InsertOrderItemsParams{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			Price:     li.ProductPrice,
		}
	}
	inserted, err := qtx.InsertOrderItems(c, params)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Int64(log.KeyLineItem, inserted).Msg("inserted order items")

	logger = logger.With().Str(log.KeyProcess, "deleting cart").Logger()
	logger.Info().Msg("deleting cart")
	_, err = qtx.DeleteCartById(c, cartID)
	if err != nil {
		err = fmt.Errorf("failed deleting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Msg("deleted cart")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Msg("committed transaction")

	logger = logger.With().Str(log.KeyProcess, "detaching cart from session").Logger()
	sess.CartID = nil
	err = svc.sessions.Save(c, sess)
	if err != nil {
		err = fmt.Errorf("failed detaching cart from session with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, sess, err
	}
	logger.Info().Msg("detached cart from session")

	orderItems := make([]response.OrderItem, len(params))
	for i, item := range params {
		orderItems[i] = repository.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}.Response()
	}
	return response.Order{
		ID:         order.ID,
		UserID:     order.UserID,
		OrderItems: orderItems,
		CreatedAt:  order.CreatedAt.Time,
	}, sess, nil
}

// FindOrders lists the user's orders, newest first, with their items and the
// total number of orders placed.
func (svc OrderService) FindOrders(
	c context.Context,
	userID uuid.UUID,
) ([]response.Order, int64, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding orders").Logger()
	logger.Trace().Msg("finding orders")
	orders, err := svc.queries.FindOrdersByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, 0, err
	}
	logger.Info().Int(log.KeyOrder, len(orders)).Msg("found orders")

	res := make([]response.Order, len(orders))
	for i, order := range orders {
		items, err := svc.queries.FindOrderItemsByOrderId(c, order.ID)
		if err != nil {
			err = fmt.Errorf(
				"failed finding order items for orderId=%s with error=%w",
				order.ID.String(),
				err,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, 0, err
		}
		orderItems := make([]response.OrderItem, len(items))
		for j, item := range items {
			orderItems[j] = item.Response()
		}
		res[i] = response.Order{
			ID:         order.ID,
			UserID:     order.UserID,
			OrderItems: orderItems,
			CreatedAt:  order.CreatedAt.Time,
		}
	}

	logger = logger.With().Str(log.KeyProcess, "counting orders").Logger()
	count, err := svc.queries.CountOrdersByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed counting orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, 0, err
	}
	logger.Info().Int64(log.KeyOrder, count).Msg("counted orders")

	return res, count, nil
}
