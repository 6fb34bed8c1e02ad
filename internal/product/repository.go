package product

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read access to the product catalog. The catalog is an
// immutable snapshot for the duration of a request; Reset swaps the whole
// snapshot at once.
type Repository interface {
	List() []Product
	GetByName(name string) (Product, error)
	// Reset replaces all products with the provided list (used for dev / seeding)
	Reset(products []Product) error
	// Version identifies the current snapshot. An empty version means the
	// snapshot cannot be tracked and derived caches must not be reused.
	Version() string
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
	version string
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{version: uuid.NewString()}
	r.storage = sanitize(seed)
	return r
}

// sanitize drops rows without a category and applies attribute defaults, so
// the engine always sees a category-complete catalog.
func sanitize(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Name == "" || p.Category == "" {
			continue
		}
		if p.BasicNeedsIndex == 0 {
			p.BasicNeedsIndex = BasicNeedsNone
		}
		out = append(out, p)
	}
	return out
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByName(name string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Reset replaces the whole in-memory storage with the provided products and
// bumps the snapshot version so downstream caches are invalidated.
func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = sanitize(products)
	r.version = uuid.NewString()
	return nil
}

func (r *InMemoryRepository) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
