package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/repository"
	"github.com/hanifr/storefront/product/cache"
	"github.com/hanifr/storefront/product/otel"
	"github.com/hanifr/storefront/product/pkg/request"
	"github.com/hanifr/storefront/product/pkg/response"
)

const productCacheTTL = 15 * time.Minute

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Str(log.KeyProduct, param.Name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in db").Logger()
	logger.Trace().Msg("finding product in db")
	_, err := svc.queries.FindProductByName(c, param.Name)
	if err == nil {
		err = fmt.Errorf("product name=%s already exists", param.Name)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding product in db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Trace().Msg("product does not exist yet")

	logger = logger.With().Str(log.KeyProcess, "inserting product to db").Logger()
	logger.Info().Msg("inserting product to db")
	product, err := svc.queries.InsertProduct(
		c,
		repository.InsertProductParams{
			Name:  param.Name,
			Price: repository.NumericFromDecimal(param.Price),
		},
	)
	if err != nil {
		err = fmt.Errorf("failed inserting product to db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(log.KeyProductID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product to db")

	cacheKey := cache.KeyProducts + product.ID.String()
	logger = logger.With().
		Str(log.KeyProcess, "inserting product to cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()
	logger.Trace().Msg("inserting product to cache")
	jsonBytes, err := json.Marshal(product.Response())
	if err != nil {
		err = fmt.Errorf("failed marshaling product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return product.Response(), nil
	}
	err = svc.cache.Set(c, cacheKey, jsonBytes, productCacheTTL).Err()
	if err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return product.Response(), nil
	}
	logger.Info().Msg("inserted product to db and cache")

	return product.Response(), nil
}

// GetProducts lists the catalog ordered by ascending price.
func (svc ProductService) GetProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService GetProducts").
		Str(log.KeyProcess, "finding products in db").
		Logger()

	logger.Trace().Msg("finding products in db")
	products, err := svc.queries.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products in db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyProducts, len(products)).Msg("found products in db")

	res := make([]response.Product, len(products))
	for i, product := range products {
		res[i] = product.Response()
	}
	return res, nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Trace().Msg("finding product in cache")
	jsonString, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil {
		res := response.Product{}
		err = json.Unmarshal([]byte(jsonString), &res)
		if err == nil {
			logger.Trace().Msg("found product in cache")
			return res, nil
		}
		logger.Info().Err(err).Msg("failed unmarshaling cached product")
	} else if !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding product in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in db").Logger()
	logger.Trace().Msg("finding product in db")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("productId=%s with error=%w", id.String(), inErrors.ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding product in db with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Trace().Msg("found product in db")

	logger = logger.With().Str(log.KeyProcess, "inserting product to cache").Logger()
	jsonBytes, err := json.Marshal(product.Response())
	if err == nil {
		err = svc.cache.Set(c, cacheKey, jsonBytes, productCacheTTL).Err()
	}
	if err != nil {
		logger.Info().Err(err).Msg("failed inserting product to cache")
	}

	return product.Response(), nil
}

func (svc ProductService) DeleteProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "ProductService DeleteProduct")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService DeleteProduct").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "deleting product from db").Logger()
	logger.Info().Msg("deleting product from db")
	rows, err := svc.queries.DeleteProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed deleting product from db with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if rows == 0 {
		err = fmt.Errorf("productId=%s with error=%w", id.String(), inErrors.ErrProductNotFound)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted product from db")

	logger = logger.With().Str(log.KeyProcess, "deleting product from cache").Logger()
	err = svc.cache.Del(c, cacheKey).Err()
	if err != nil {
		logger.Info().Err(err).Msg("failed deleting product from cache")
	}

	return nil
}
