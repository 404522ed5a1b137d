package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/hanifr/storefront/internal/http"
	"github.com/hanifr/storefront/internal/log"
	inOtel "github.com/hanifr/storefront/internal/otel"
	"github.com/hanifr/storefront/internal/session"
	"github.com/hanifr/storefront/product/service"
	"github.com/hanifr/storefront/store/otel"
)

// StoreController serves the storefront landing page: the catalog ordered by
// ascending price, plus whatever notice the session carries.
type StoreController struct {
	service  *service.ProductService
	sessions session.Store
}

func AttachStoreController(
	router *mux.Router,
	service *service.ProductService,
	sessions session.Store,
) {
	controller := StoreController{service: service, sessions: sessions}

	router.HandleFunc("/", controller.Index).Methods(http.MethodGet)
}

func (t StoreController) Index(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StoreController Index")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StoreController Index").
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

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := t.service.GetProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Int(log.KeyProducts, len(products)).Msg("found products")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "welcome to the storefront",
		"data": map[string]interface{}{
			"products": products,
			"notice":   notice,
		},
	})
}
