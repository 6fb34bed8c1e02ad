package purchase

import (
	"sync"

	"github.com/google/uuid"
)

// Repository provides read access to the purchase history snapshot.
type Repository interface {
	List() []Record
	ListByPerson(personID int) []Record
	// Reset replaces all purchase rows with the provided list (used for dev / seeding)
	Reset(records []Record) error
	// Version identifies the current snapshot. An empty version means the
	// snapshot cannot be tracked and derived caches must not be reused.
	Version() string
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Record
	version string
}

func NewInMemoryRepository(seed []Record) *InMemoryRepository {
	r := &InMemoryRepository{version: uuid.NewString()}
	r.storage = sanitize(seed)
	return r
}

// sanitize clamps negative spend values to 0, mirroring the provider contract
// that non-numeric source amounts coerce to 0.
func sanitize(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.ProductName == "" {
			continue
		}
		if rec.Amount < 0 {
			rec.Amount = 0
		}
		out = append(out, rec)
	}
	return out
}

func (r *InMemoryRepository) List() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) ListByPerson(personID int) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0)
	for _, rec := range r.storage {
		if rec.PersonID == personID {
			out = append(out, rec)
		}
	}
	return out
}

// Reset replaces the whole in-memory storage with the provided records and
// bumps the snapshot version so downstream caches are invalidated.
func (r *InMemoryRepository) Reset(records []Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = sanitize(records)
	r.version = uuid.NewString()
	return nil
}

func (r *InMemoryRepository) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
