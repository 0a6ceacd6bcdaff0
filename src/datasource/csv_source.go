package datasource

import (
	"context"
	"fmt"
	"os"
	"time"

	"rentroll/src/models"
	"rentroll/src/utils"
)

// csvSnapshot is a parsed file together with the modification time observed before parsing it.
type csvSnapshot struct {
	modTime time.Time
	records []models.RentRollRecord
}

// CSVSource reads the rent roll from a CSV file. The parsed file is reused while the file's
// modification time stays the same.
type CSVSource struct {
	path  string
	cache *utils.Cache[csvSnapshot]
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path, cache: utils.NewCache[csvSnapshot]()}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

func (s *CSVSource) Load(ctx context.Context) ([]models.RentRollRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat rent roll file: %w", err)
	}
	if snapshot, ok := s.cache.Get(time.Time{}); ok && snapshot.modTime.Equal(info.ModTime()) {
		return snapshot.records, nil
	}

	records, err := utils.ReadRentRollCSV(s.path)
	if err != nil {
		return nil, err
	}
	s.cache.Set(csvSnapshot{modTime: info.ModTime(), records: records}, 0)
	return records, nil
}
