package repositories_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentroll/src/models"
	"rentroll/src/repositories"
)

func sampleRecords() []models.RentRollRecord {
	return []models.RentRollRecord{
		{Date: "2024-12-03", PropertyID: "1", PropertyName: "Sunset Gardens", UnitNumber: "P1-U01", MonthlyRent: "0"},
		{Date: "2024-12-03", PropertyID: "1", PropertyName: "Sunset Gardens", UnitNumber: "P1-U02", ResidentID: "A1", ResidentName: "Resident A", MonthlyRent: "1000"},
	}
}

func TestRentRollRepository(t *testing.T) {
	t.Run("starts empty without a load time", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(nil)
		assert.Empty(t, repo.All())
		assert.Zero(t, repo.Count())
		assert.True(t, repo.LoadedAt().IsZero())
	})

	t.Run("All returns a copy", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(sampleRecords())
		records := repo.All()
		records[0].ResidentName = "Someone"
		assert.Empty(t, repo.All()[0].ResidentName)
	})

	t.Run("Replace clears the load error", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(nil)
		repo.SetLoadError(errors.New("boom"))
		require.Error(t, repo.LoadError())

		repo.Replace(sampleRecords())
		assert.NoError(t, repo.LoadError())
		assert.Equal(t, 2, repo.Count())
		assert.False(t, repo.LoadedAt().IsZero())
	})

	t.Run("SetLoadError keeps the records", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(sampleRecords())
		repo.SetLoadError(errors.New("source unavailable"))
		assert.Equal(t, 2, repo.Count())
		assert.EqualError(t, repo.LoadError(), "source unavailable")
	})

	t.Run("Apply keeps only applied projections", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(sampleRecords())

		applied := repo.Apply(func(records []models.RentRollRecord) ([]models.RentRollRecord, bool) {
			return nil, false
		})
		assert.False(t, applied)
		assert.Equal(t, 2, repo.Count())

		applied = repo.Apply(func(records []models.RentRollRecord) ([]models.RentRollRecord, bool) {
			return append(records, models.RentRollRecord{Date: "2024-12-04"}), true
		})
		assert.True(t, applied)
		assert.Equal(t, 3, repo.Count())
	})

	t.Run("concurrent projections are serialized", func(t *testing.T) {
		repo := repositories.NewRentRollRepository(nil)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				repo.Apply(func(records []models.RentRollRecord) ([]models.RentRollRecord, bool) {
					next := make([]models.RentRollRecord, len(records), len(records)+1)
					copy(next, records)
					return append(next, models.RentRollRecord{}), true
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, repo.Count())
	})
}
