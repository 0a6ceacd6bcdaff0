package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"rentroll/src/models"
)

// ReadRentRollCSV reads a rent roll CSV file and returns its rows in file order.
func ReadRentRollCSV(filePath string) ([]models.RentRollRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open the file: %w", err)
	}
	defer file.Close()

	records, err := ParseRentRollCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read the file %s: %w", filePath, err)
	}
	return records, nil
}

// ParseRentRollCSV parses a rent roll with a header row. Every value is kept as text and
// extra columns are ignored. A file holding only the header is an empty rent roll.
func ParseRentRollCSV(reader io.Reader) ([]models.RentRollRecord, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		header, ok := headerOnly(data)
		if !ok {
			return nil, df.Err
		}
		if err := requireColumns(normalizeNames(header)); err != nil {
			return nil, err
		}
		return []models.RentRollRecord{}, nil
	}

	names := normalizeNames(df.Names())
	if err := df.SetNames(names...); err != nil {
		return nil, err
	}
	if err := requireColumns(names); err != nil {
		return nil, err
	}

	columns := make(map[string][]string, len(RentRollColumns))
	for _, column := range RentRollColumns {
		columns[column] = df.Col(column).Records()
	}

	records := make([]models.RentRollRecord, df.Nrow())
	for i := range records {
		records[i] = models.RentRollRecord{
			Date:         columns[ColumnDate][i],
			PropertyID:   columns[ColumnPropertyID][i],
			PropertyName: columns[ColumnPropertyName][i],
			UnitNumber:   columns[ColumnUnitNumber][i],
			ResidentID:   columns[ColumnResidentID][i],
			ResidentName: columns[ColumnResidentName][i],
			MonthlyRent:  columns[ColumnMonthlyRent][i],
		}
	}
	return records, nil
}

// headerOnly returns the header of a CSV that has no data rows. gota refuses to build a frame
// without rows, so that case is told apart here.
func headerOnly(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil || len(rows) != 1 {
		return nil, false
	}
	return rows[0], true
}

func normalizeNames(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	return out
}

func requireColumns(names []string) error {
	for _, column := range RentRollColumns {
		if !hasColumn(names, column) {
			return fmt.Errorf("missing column %q", column)
		}
	}
	return nil
}

func hasColumn(names []string, column string) bool {
	for _, name := range names {
		if name == column {
			return true
		}
	}
	return false
}
