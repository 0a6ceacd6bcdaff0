package services

import (
	"sort"
	"strings"

	"rentroll/src/models"
	"rentroll/src/schemas"
	"rentroll/src/utils"
)

// SnapshotRows returns the records observed on snapshotDate. With no snapshot date the date of
// the first record is used.
func SnapshotRows(records []models.RentRollRecord, snapshotDate string) []models.RentRollRecord {
	if snapshotDate == "" {
		snapshotDate = FirstDate(records)
	}
	rows := make([]models.RentRollRecord, 0)
	for _, record := range records {
		if record.Date == snapshotDate {
			rows = append(rows, record)
		}
	}
	return rows
}

// FilterRentRoll applies the snapshot, property, occupancy and search filters as a conjunction.
func FilterRentRoll(records []models.RentRollRecord, filters schemas.RentRollFilters) []models.RentRollRecord {
	query := strings.ToLower(strings.TrimSpace(filters.Search))
	rows := make([]models.RentRollRecord, 0)
	for _, record := range SnapshotRows(records, filters.SnapshotDate) {
		if filters.PropertyName != "" && record.PropertyName != filters.PropertyName {
			continue
		}
		if !matchesOccupancy(record, filters.Occupancy) {
			continue
		}
		if query != "" &&
			!strings.HasPrefix(strings.ToLower(record.UnitNumber), query) &&
			!strings.HasPrefix(strings.ToLower(record.ResidentName), query) {
			continue
		}
		rows = append(rows, record)
	}
	return rows
}

func matchesOccupancy(record models.RentRollRecord, occupancy string) bool {
	switch occupancy {
	case schemas.OccupancyOccupied:
		return record.Occupied()
	case schemas.OccupancyVacant:
		return !record.Occupied()
	default:
		return true
	}
}

// UnitListings partitions the snapshot units into vacant and occupied ones, keeping the first
// occurrence of every property/unit pair.
func UnitListings(records []models.RentRollRecord, snapshotDate string) schemas.UnitListings {
	listings := schemas.UnitListings{
		VacantUnits:   make([]schemas.UnitOption, 0),
		OccupiedUnits: make([]schemas.UnitOption, 0),
	}
	seenVacant := make(map[schemas.UnitOption]struct{})
	seenOccupied := make(map[schemas.UnitOption]struct{})
	for _, record := range SnapshotRows(records, snapshotDate) {
		unit := schemas.UnitOption{PropertyName: record.PropertyName, UnitNumber: record.UnitNumber}
		if record.Occupied() {
			if _, ok := seenOccupied[unit]; !ok {
				seenOccupied[unit] = struct{}{}
				listings.OccupiedUnits = append(listings.OccupiedUnits, unit)
			}
			continue
		}
		if _, ok := seenVacant[unit]; !ok {
			seenVacant[unit] = struct{}{}
			listings.VacantUnits = append(listings.VacantUnits, unit)
		}
	}
	return listings
}

// Properties lists property names once per property id; the first name seen for an id wins.
func Properties(records []models.RentRollRecord) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, record := range records {
		if record.PropertyID == "" {
			continue
		}
		if _, ok := seen[record.PropertyID]; ok {
			continue
		}
		seen[record.PropertyID] = struct{}{}
		names = append(names, record.PropertyName)
	}
	return names
}

// FirstDate is the date of the first record in collection order.
func FirstDate(records []models.RentRollRecord) string {
	if len(records) == 0 {
		return ""
	}
	return records[0].Date
}

// DateBounds returns the lowest and highest non-empty dates present in the collection.
func DateBounds(records []models.RentRollRecord) (string, string) {
	dates := make([]string, 0, len(records))
	for _, record := range records {
		if record.Date != "" {
			dates = append(dates, record.Date)
		}
	}
	if len(dates) == 0 {
		return "", ""
	}
	sort.Strings(dates)
	return dates[0], dates[len(dates)-1]
}

// WithDefaults fills the empty snapshot date and range bounds from the collection.
func WithDefaults(records []models.RentRollRecord, filters schemas.ViewFilters) schemas.ViewFilters {
	if filters.SnapshotDate == "" {
		filters.SnapshotDate = FirstDate(records)
	}
	if filters.StartDate == "" || filters.EndDate == "" {
		first, last := DateBounds(records)
		if filters.StartDate == "" {
			filters.StartDate = first
		}
		if filters.EndDate == "" {
			filters.EndDate = last
		}
	}
	return filters
}

// DeriveView computes everything the rent roll screen renders from the records and filters.
func DeriveView(records []models.RentRollRecord, filters schemas.ViewFilters) schemas.ViewModel {
	filters = WithDefaults(records, filters)
	units := UnitListings(records, filters.SnapshotDate)
	return schemas.ViewModel{
		SnapshotDate:  filters.SnapshotDate,
		StartDate:     filters.StartDate,
		EndDate:       filters.EndDate,
		RangeDays:     utils.RangeDays(filters.StartDate, filters.EndDate),
		Rows:          FilterRentRoll(records, filters.RentRollFilters),
		Properties:    Properties(records),
		VacantUnits:   units.VacantUnits,
		OccupiedUnits: units.OccupiedUnits,
		KPIs:          DeriveKPIs(records, filters.StartDate, filters.EndDate),
	}
}
