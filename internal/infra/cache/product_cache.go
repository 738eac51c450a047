package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"qkart/config"
	"qkart/internal/domain/entity"
	"qkart/internal/domain/repository"
	"qkart/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const productKeyPrefix = "product:"

// store is the subset of the redis client the cache uses.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedProduct is the stored form of a product. Cost is kept as a decimal string.
type cachedProduct struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   int             `json:"rating"`
	Image    string          `json:"image"`
}

// productCache decorates a ProductRepository with a redis read-through cache.
// Redis failures degrade to the underlying repository.
type productCache struct {
	next   repository.ProductRepository
	store  store
	ttl    time.Duration
	logger *slog.Logger
}

// ProductRepositoryParams holds dependencies for the product repository, injected by Fx
type ProductRepositoryParams struct {
	fx.In

	DB     *gorm.DB
	Redis  *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewProductRepository returns the postgres product repository, cached when redis is available.
func NewProductRepository(params ProductRepositoryParams) repository.ProductRepository {
	base := postgres.NewProductRepository(params.DB)
	if params.Redis == nil {
		return base
	}

	return NewProductCache(base, params.Redis, params.Config.Redis.ProductTTL, params.Logger)
}

// NewProductCache wraps next with a cache stored in s.
func NewProductCache(next repository.ProductRepository, s store, ttl time.Duration, logger *slog.Logger) repository.ProductRepository {
	return &productCache{
		next:   next,
		store:  s,
		ttl:    ttl,
		logger: logger,
	}
}

// FindByID serves the product from redis, loading and storing it on a miss.
// Unknown products are not cached.
func (c *productCache) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	key := productKeyPrefix + id.String()

	data, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedProduct
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached.toEntity(), nil
		}
		c.logger.WarnContext(ctx, "Discarding undecodable cached product", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "Product cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	product, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromEntity(product))
	if err != nil {
		return product, nil
	}
	if err := c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Product cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return product, nil
}

func fromEntity(p *entity.Product) cachedProduct {
	return cachedProduct{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost,
		Rating:   p.Rating,
		Image:    p.Image,
	}
}

func (c cachedProduct) toEntity() *entity.Product {
	return &entity.Product{
		ID:       c.ID,
		Name:     c.Name,
		Category: c.Category,
		Cost:     c.Cost,
		Rating:   c.Rating,
		Image:    c.Image,
	}
}
