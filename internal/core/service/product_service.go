package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adventureworks/catalog-api/internal/api/metrics"
	"github.com/adventureworks/catalog-api/internal/core/domain"
	"github.com/adventureworks/catalog-api/internal/core/ports"
)

// ProductService implements product CRUD use-cases with read-through caching
// and an asynchronous audit trail.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

// NewProductService wires the repository with optional cache and audit sink.
// Either may be nil; the service then skips that concern.
func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, audit ports.AuditSink, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, audit: audit, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Get serves from the cache when possible and populates it on a miss.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
			return p, nil
		}
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, p)
	}
	return p, nil
}

// Create validates the payload against all entity invariants before any
// persistence call.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput, actor string) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:              input.Name,
		ProductNumber:     input.ProductNumber,
		StandardCost:      input.StandardCost,
		ListPrice:         input.ListPrice,
		Weight:            input.Weight,
		ProductCategoryID: input.ProductCategoryID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(strconv.FormatInt(created.ProductCategoryID, 10)).Inc()
	metrics.ProductMutationsTotal.WithLabelValues(ports.AuditActionCreated).Inc()

	if s.cache != nil {
		s.cache.Set(ctx, created)
	}
	s.recordAudit(ports.AuditActionCreated, created.ID, actor, fmt.Sprintf("product %q created", created.Name))

	s.logger.Info().Int64("product_id", created.ID).Str("product_number", created.ProductNumber).Msg("product created")
	return created, nil
}

// Update merges only the fields present in the patch onto the stored record
// and re-validates the merged invariants, all inside one transaction.
func (s *ProductService) Update(ctx context.Context, id int64, patch ports.ProductPatch, actor string) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, func(p *domain.Product) error {
		patch.Apply(p)
		return p.Validate()
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues(ports.AuditActionUpdated).Inc()

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.recordAudit(ports.AuditActionUpdated, id, actor, fmt.Sprintf("product %q updated", updated.Name))

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.ProductMutationsTotal.WithLabelValues(ports.AuditActionDeleted).Inc()

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.recordAudit(ports.AuditActionDeleted, id, actor, "product deleted")

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// recordAudit enqueues an event; auditing never fails the originating request.
func (s *ProductService) recordAudit(action string, productID int64, actor, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		ProductID:  productID,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
		Detail:     detail,
	})
}
