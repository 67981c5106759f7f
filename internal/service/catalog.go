package service

import (
	"context"
	"errors"

	"github.com/deppfellow/filmorate/internal/metrics"
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/deppfellow/filmorate/internal/repository"
	"github.com/rs/zerolog"
)

// Registry operation names used in logs and metrics.
const (
	OperationList   = "list"
	OperationCreate = "create"
	OperationUpdate = "update"
)

// CatalogService exposes list/create/update for one resource type.
type CatalogService[T repository.Entity[T]] struct {
	registry *repository.Registry[T]
	metrics  *metrics.Metrics
}

// NewCatalogService wraps registry. m may be nil when metrics are disabled.
func NewCatalogService[T repository.Entity[T]](registry *repository.Registry[T], m *metrics.Metrics) *CatalogService[T] {
	if m != nil {
		m.RegisterRecordCount(registry.Resource(), registry.Len)
	}

	return &CatalogService[T]{
		registry: registry,
		metrics:  m,
	}
}

// List returns every stored record.
func (s *CatalogService[T]) List(ctx context.Context) []T {
	records := s.registry.List()

	s.record(OperationList, nil)
	zerolog.Ctx(ctx).Debug().
		Str("resource", s.registry.Resource()).
		Int("count", len(records)).
		Msg("listed records")

	return records
}

// Create validates and stores a new record.
func (s *CatalogService[T]) Create(ctx context.Context, candidate T) (T, error) {
	record, err := s.registry.Create(candidate)
	s.record(OperationCreate, err)
	if err != nil {
		s.logRejection(ctx, OperationCreate, candidate.Identifier(), err)
		return record, err
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.registry.Resource()).
		Int64("id", record.Identifier()).
		Interface("record", record).
		Msgf("%s created", s.registry.Resource())

	return record, nil
}

// Update replaces an existing record.
func (s *CatalogService[T]) Update(ctx context.Context, candidate T) (T, error) {
	record, err := s.registry.Update(candidate)
	s.record(OperationUpdate, err)
	if err != nil {
		s.logRejection(ctx, OperationUpdate, candidate.Identifier(), err)
		return record, err
	}

	zerolog.Ctx(ctx).Info().
		Str("resource", s.registry.Resource()).
		Int64("id", record.Identifier()).
		Interface("record", record).
		Msgf("%s updated", s.registry.Resource())

	return record, nil
}

// Count returns the number of stored records.
func (s *CatalogService[T]) Count() int {
	return s.registry.Len()
}

func (s *CatalogService[T]) record(operation string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(s.registry.Resource(), operation, outcome(err))
}

func (s *CatalogService[T]) logRejection(ctx context.Context, operation string, id int64, err error) {
	event := zerolog.Ctx(ctx).Warn()
	if outcome(err) == metrics.OutcomeError {
		event = zerolog.Ctx(ctx).Error()
	}

	event.
		Err(err).
		Str("resource", s.registry.Resource()).
		Str("operation", operation).
		Int64("id", id).
		Msgf("%s %s rejected", s.registry.Resource(), operation)
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}

	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		return metrics.OutcomeRejected
	}
	return metrics.OutcomeError
}
