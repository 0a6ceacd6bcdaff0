package repositories

import (
	"sync"
	"time"

	"rentroll/src/models"
)

// RentRollRepository is the single in-memory owner of the rent roll. Readers get copies;
// writers go through Replace or Apply, each of which is one critical section.
type RentRollRepository interface {
	All() []models.RentRollRecord
	Count() int
	Replace(records []models.RentRollRecord)
	Apply(projection func([]models.RentRollRecord) ([]models.RentRollRecord, bool)) bool
	SetLoadError(err error)
	LoadError() error
	LoadedAt() time.Time
}

type rentRollRepo struct {
	mutex    sync.RWMutex
	records  []models.RentRollRecord
	loadErr  error
	loadedAt time.Time
}

func NewRentRollRepository(records []models.RentRollRecord) RentRollRepository {
	repo := &rentRollRepo{}
	if records != nil {
		repo.Replace(records)
	}
	return repo
}

func (r *rentRollRepo) All() []models.RentRollRecord {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]models.RentRollRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *rentRollRepo) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.records)
}

// Replace swaps the whole collection, discarding in-memory mutations, and clears the last
// load error.
func (r *rentRollRepo) Replace(records []models.RentRollRecord) {
	snapshot := make([]models.RentRollRecord, len(records))
	copy(snapshot, records)

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.records = snapshot
	r.loadErr = nil
	r.loadedAt = time.Now()
}

// Apply runs a projection against the current collection and keeps its result when the
// projection reports it applied.
func (r *rentRollRepo) Apply(projection func([]models.RentRollRecord) ([]models.RentRollRecord, bool)) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	next, applied := projection(r.records)
	if applied {
		r.records = next
	}
	return applied
}

// SetLoadError records a failed load. The records already held are kept.
func (r *rentRollRepo) SetLoadError(err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.loadErr = err
}

func (r *rentRollRepo) LoadError() error {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.loadErr
}

func (r *rentRollRepo) LoadedAt() time.Time {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.loadedAt
}
