package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hanifr/storefront/cart/otel"
	"github.com/hanifr/storefront/cart/pkg/response"
	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/repository"
	"github.com/hanifr/storefront/internal/session"
)

type CartService struct {
	pool     *pgxpool.Pool
	queries  *repository.Queries
	sessions session.Store
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	sessions session.Store,
) CartService {
	return CartService{pool: pool, queries: queries, sessions: sessions}
}

// CurrentCart returns the session's cart, creating one lazily on first use
// and recording its id on the session.
func (svc CartService) CurrentCart(
	c context.Context,
	sess session.Session,
) (repository.Cart, session.Session, error) {
	c, span := otel.Tracer.Start(c, "CartService CurrentCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService CurrentCart").
		Str(log.KeySessionID, sess.ID.String()).
		Logger()

	if sess.CartID != nil {
		logger = logger.With().
			Str(log.KeyProcess, "finding cart in db").
			Str(log.KeyCartID, sess.CartID.String()).
			Logger()
		logger.Trace().Msg("finding cart in db")
		cart, err := svc.queries.FindCartById(c, *sess.CartID)
		if err == nil {
			logger.Trace().Msg("found cart in db")
			return cart, sess, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding cart in db with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return repository.Cart{}, sess, err
		}
		logger.Info().Msg("session cart no longer exists, creating a new one")
	}

	logger = logger.With().Str(log.KeyProcess, "creating cart").Logger()
	logger.Info().Msg("creating cart")
	cart, err := svc.queries.InsertCart(c)
	if err != nil {
		err = fmt.Errorf("failed inserting cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return repository.Cart{}, sess, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()
	logger.Info().Msg("created cart")

	logger = logger.With().Str(log.KeyProcess, "saving cart id to session").Logger()
	logger.Info().Msg("saving cart id to session")
	sess.CartID = &cart.ID
	err = svc.sessions.Save(c, sess)
	if err != nil {
		err = fmt.Errorf("failed saving cart id to session with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return repository.Cart{}, sess, err
	}
	logger.Info().Msg("saved cart id to session")

	return cart, sess, nil
}

// AddProduct finds the cart's line item for the product and increments its
// quantity by 1, inserting a fresh line item with quantity 1 when the product
// is not in the cart yet. Returns the affected line item.
func (svc CartService) AddProduct(
	c context.Context,
	sess session.Session,
	productID uuid.UUID,
) (response.LineItem, session.Session, error) {
	c, span := otel.Tracer.Start(c, "CartService AddProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddProduct").
		Str(log.KeyProductID, productID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Trace().Msg("finding product")
	product, err := svc.queries.FindProductById(c, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("productId=%s with error=%w", productID.String(), inErrors.ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding productId=%s with error=%w", productID.String(), err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, sess, err
	}
	logger.Trace().Msg("found product")

	c = logger.WithContext(c)
	cart, sess, err := svc.CurrentCart(c, sess)
	if err != nil {
		return response.LineItem{}, sess, err
	}
	logger = logger.With().Str(log.KeyCartID, cart.ID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "finding line item").Logger()
	logger.Trace().Msg("finding line item")
	lineItem, err := svc.queries.FindLineItemByCartIdAndProductId(
		c,
		repository.FindLineItemByCartIdAndProductIdParams{CartID: cart.ID, ProductID: productID},
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding line item with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.LineItem{}, sess, err
		}

		logger = logger.With().Str(log.KeyProcess, "inserting line item").Logger()
		logger.Info().Msg("inserting line item")
		lineItem, err = svc.queries.InsertLineItem(
			c,
			repository.InsertLineItemParams{CartID: cart.ID, ProductID: productID, Quantity: 1},
		)
		if err != nil {
			err = fmt.Errorf("failed inserting line item with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.LineItem{}, sess, err
		}
		logger = logger.With().Str(log.KeyLineItemID, lineItem.ID.String()).Logger()
		logger.Info().Msg("inserted line item")

		return newLineItem(lineItem, product), sess, nil
	}

	logger = logger.With().
		Str(log.KeyProcess, "incrementing line item quantity").
		Str(log.KeyLineItemID, lineItem.ID.String()).
		Int32(log.KeyQuantity, lineItem.Quantity).
		Logger()
	logger.Info().Msg("incrementing line item quantity")
	lineItem, err = svc.queries.UpdateLineItemQuantity(
		c,
		repository.UpdateLineItemQuantityParams{ID: lineItem.ID, Quantity: lineItem.Quantity + 1},
	)
	if err != nil {
		err = fmt.Errorf("failed incrementing line item quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, sess, err
	}
	logger.Info().Int32(log.KeyQuantity, lineItem.Quantity).Msg("incremented line item quantity")

	return newLineItem(lineItem, product), sess, nil
}

// DeleteProduct decrements the quantity of the cart's line item for the
// product by 1. The line item must already exist; a missing line item is a
// lookup failure for the caller to avoid. The row is kept even when the
// quantity reaches zero or drops below it.
func (svc CartService) DeleteProduct(
	c context.Context,
	sess session.Session,
	productID uuid.UUID,
) (response.LineItem, error) {
	c, span := otel.Tracer.Start(c, "CartService DeleteProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService DeleteProduct").
		Str(log.KeyProductID, productID.String()).
		Logger()

	if sess.CartID == nil {
		err := inErrors.ErrCartNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, err
	}
	logger = logger.With().Str(log.KeyCartID, sess.CartID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "finding line item").Logger()
	logger.Trace().Msg("finding line item")
	lineItem, err := svc.queries.FindLineItemByCartIdAndProductId(
		c,
		repository.FindLineItemByCartIdAndProductIdParams{CartID: *sess.CartID, ProductID: productID},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("productId=%s with error=%w", productID.String(), inErrors.ErrLineItemNotFound)
		} else {
			err = fmt.Errorf("failed finding line item with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, err
	}
	logger.Trace().Msg("found line item")

	logger = logger.With().
		Str(log.KeyProcess, "decrementing line item quantity").
		Str(log.KeyLineItemID, lineItem.ID.String()).
		Int32(log.KeyQuantity, lineItem.Quantity).
		Logger()
	logger.Info().Msg("decrementing line item quantity")
	lineItem, err = svc.queries.UpdateLineItemQuantity(
		c,
		repository.UpdateLineItemQuantityParams{ID: lineItem.ID, Quantity: lineItem.Quantity - 1},
	)
	if err != nil {
		err = fmt.Errorf("failed decrementing line item quantity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, err
	}
	logger.Info().Int32(log.KeyQuantity, lineItem.Quantity).Msg("decremented line item quantity")

	product, err := svc.queries.FindProductById(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%s with error=%w", productID.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.LineItem{}, err
	}

	return newLineItem(lineItem, product), nil
}

// FindCart returns the session's cart with its line items and total price.
// A session without a cart yields an empty cart with total 0.
func (svc CartService) FindCart(
	c context.Context,
	sess session.Session,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Logger()

	if sess.CartID == nil {
		logger.Trace().Msg("session has no cart")
		return emptyCart(), nil
	}
	logger = logger.With().Str(log.KeyCartID, sess.CartID.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart in db").Logger()
	logger.Trace().Msg("finding cart in db")
	cart, err := svc.queries.FindCartById(c, *sess.CartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("session cart no longer exists")
			return emptyCart(), nil
		}
		err = fmt.Errorf("failed finding cart in db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Trace().Msg("found cart in db")

	logger = logger.With().Str(log.KeyProcess, "finding line items").Logger()
	logger.Trace().Msg("finding line items")
	rows, err := svc.queries.FindLineItemsByCartId(c, cart.ID)
	if err != nil {
		err = fmt.Errorf("failed finding line items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	lineItems := mapLineItems(rows)
	total := totalPrice(lineItems)
	logger = logger.With().
		Int(log.KeyLineItem, len(lineItems)).
		Str(log.KeyTotalPrice, total.String()).
		Logger()
	logger.Info().Msg("found line items")

	return response.Cart{
		ID:         cart.ID,
		LineItems:  lineItems,
		TotalPrice: total,
		CreatedAt:  cart.CreatedAt.Time,
	}, nil
}
