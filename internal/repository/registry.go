package repository

import (
	"fmt"
	"sync"

	"github.com/deppfellow/filmorate/internal/model"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entity is a record stored in a Registry.
type Entity[T any] interface {
	Identifier() int64
	WithIdentifier(id int64) T
}

// ValidateFunc checks a candidate record and returns the first rule it breaks.
type ValidateFunc[T any] func(candidate T) error

// NormalizeFunc derives the canonical form of a validated record
// (for example, defaulted fields) before it is stored.
type NormalizeFunc[T any] func(record T) T

// Registry is the store and identifier counter for one resource type.
type Registry[T Entity[T]] struct {
	mu        sync.RWMutex
	resource  string
	seq       *Sequence
	records   *orderedmap.OrderedMap[int64, T]
	validate  ValidateFunc[T]
	normalize NormalizeFunc[T]
}

// NewRegistry returns an empty registry for resource. normalize may be nil.
func NewRegistry[T Entity[T]](resource string, validate ValidateFunc[T], normalize NormalizeFunc[T]) *Registry[T] {
	if normalize == nil {
		normalize = func(record T) T { return record }
	}

	return &Registry[T]{
		resource:  resource,
		seq:       NewSequence(),
		records:   orderedmap.New[int64, T](),
		validate:  validate,
		normalize: normalize,
	}
}

// Resource returns the resource name the registry was created for.
func (r *Registry[T]) Resource() string {
	return r.resource
}

// List returns copies of all stored records in insertion order.
func (r *Registry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, r.records.Len())
	for pair := r.records.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Len returns the number of stored records.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.Len()
}

// Create validates candidate, assigns it the next identifier and stores
// its canonical form. Any identifier carried by candidate is ignored.
// On failure the registry is left unchanged and no identifier is used.
func (r *Registry[T]) Create(candidate T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(candidate); err != nil {
		var zero T
		return zero, err
	}

	record := r.normalize(candidate.WithIdentifier(r.seq.Next()))
	r.records.Set(record.Identifier(), record)

	return record, nil
}

// Update replaces every field of an existing record with candidate's.
//
// Checks run in a fixed order: identifier present, record exists,
// candidate valid. On any failure the registry is left unchanged.
func (r *Registry[T]) Update(candidate T) (T, error) {
	var zero T

	id := candidate.Identifier()
	if id == 0 {
		return zero, model.NewError(r.resource, model.KindMissingID, "id", "id must be provided")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records.Get(id); !ok {
		return zero, model.NewError(r.resource, model.KindNotFound, "id",
			fmt.Sprintf("%s with id = %d not found", r.resource, id))
	}

	if err := r.validate(candidate); err != nil {
		return zero, err
	}

	record := r.normalize(candidate)
	r.records.Set(id, record)

	return record, nil
}
