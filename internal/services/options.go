// Package services wires the application dependencies from configuration.
package services

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/get_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_categories"
	"github.com/light-bringer/shopfront-service/internal/app/shop/queries/list_products"
	"github.com/light-bringer/shopfront-service/internal/app/shop/repo"
	"github.com/light-bringer/shopfront-service/internal/app/shop/session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/add_to_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/clear_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/close_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/delete_product"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/login_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/logout_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/open_session"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/remove_from_cart"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/update_cart_item"
	"github.com/light-bringer/shopfront-service/internal/app/shop/usecases/upsert_product"
	"github.com/light-bringer/shopfront-service/internal/pkg/clock"
	"github.com/light-bringer/shopfront-service/internal/pkg/committer"
	"github.com/light-bringer/shopfront-service/internal/pkg/config"
	"github.com/light-bringer/shopfront-service/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/shopfront-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client

	Catalog  contracts.CatalogSource
	Sessions *session.Registry

	CatalogHandler *catalog.Handler
	Router         *gin.Engine
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}
	clk := clock.NewRealClock()

	priceMax, err := ParsePriceMax(cfg.DefaultPriceMax)
	if err != nil {
		return nil, err
	}

	// 1. Catalog source and writer
	var catalogWriter contracts.CatalogWriter
	switch cfg.CatalogBackend {
	case config.CatalogSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = client
		spannerCatalog := repo.NewSpannerCatalog(client)
		opts.Catalog = spannerCatalog
		catalogWriter = repo.NewCommitCatalogWriter(spannerCatalog, spannerCatalog, committer.NewCommitter(client))
	default:
		memoryCatalog := repo.NewSeededMemoryCatalog()
		opts.Catalog = memoryCatalog
		catalogWriter = memoryCatalog
	}

	// 2. Cart snapshot store
	var snapshots contracts.CartSnapshotStore
	switch cfg.CartStore {
	case config.CartStoreRedis:
		client, err := repo.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			opts.Close()
			return nil, err
		}
		opts.RedisClient = client
		snapshots = repo.NewRedisCartSnapshots(client, cfg.CartTTL, clk)
	default:
		snapshots = repo.NewMemoryCartSnapshots(cfg.CartTTL, clk)
	}

	// 3. Sessions
	opts.Sessions = session.NewRegistry(opts.Catalog, snapshots, clk, cfg.CartTTL, logger)

	// 4. Queries
	listProductsQuery := list_products.NewQuery(opts.Catalog)
	getProductQuery := get_product.NewQuery(opts.Catalog)

	// 5. Transports
	httpHandler := httptransport.NewHandler(httptransport.Dependencies{
		ListProducts:    listProductsQuery,
		GetProduct:      getProductQuery,
		ListCategories:  list_categories.NewQuery(opts.Catalog),
		GetSession:      get_session.NewQuery(opts.Sessions),
		GetCart:         get_cart.NewQuery(opts.Sessions),
		OpenSession:     open_session.NewInteractor(opts.Sessions),
		LoginSession:    login_session.NewInteractor(opts.Sessions),
		LogoutSession:   logout_session.NewInteractor(opts.Sessions),
		CloseSession:    close_session.NewInteractor(opts.Sessions),
		AddToCart:       add_to_cart.NewInteractor(opts.Catalog, opts.Sessions, cfg.EnforceStock),
		UpdateCartItem:  update_cart_item.NewInteractor(opts.Sessions, cfg.EnforceStock),
		RemoveFromCart:  remove_from_cart.NewInteractor(opts.Sessions),
		ClearCart:       clear_cart.NewInteractor(opts.Sessions),
		UpsertProduct:   upsert_product.NewInteractor(opts.Catalog, catalogWriter, logger),
		DeleteProduct:   delete_product.NewInteractor(catalogWriter, logger),
		DefaultPriceMax: priceMax,
	}, logger)

	opts.Router = httptransport.NewRouter(httpHandler, logger, httptransport.RouterOptions{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		AllowOrigins:   cfg.CORSOrigins,
	})
	opts.CatalogHandler = catalog.NewHandler(listProductsQuery, getProductQuery, priceMax, logger)

	return opts, nil
}

// ParsePriceMax parses the default listing price cap. "none" or an empty
// value leaves listings uncapped.
func ParsePriceMax(raw string) (*domain.Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		return nil, nil
	}
	m, err := domain.ParseMoney(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_PRICE_MAX: %w", err)
	}
	return m, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
}
