package services

import (
	"sort"

	"rentroll/src/models"
	"rentroll/src/schemas"
)

const unknownProperty = "Unknown"

type unitKey struct {
	property string
	unit     string
}

// unitTimeline is the sequence of observations of one unit ordered by date. When a unit has
// several rows on the same date the last one in collection order is kept.
type unitTimeline []models.RentRollRecord

type propertyRows struct {
	startRows []models.RentRollRecord
	endRows   []models.RentRollRecord
}

func kpiPropertyName(record models.RentRollRecord) string {
	if record.PropertyName == "" {
		return unknownProperty
	}
	return record.PropertyName
}

// DeriveKPIs computes one KPI per property observed on the start or end date of the range.
// Dates are compared as strings, so they must be lexicographically ordered (YYYY-MM-DD).
func DeriveKPIs(records []models.RentRollRecord, startDate, endDate string) []schemas.CommunityKPI {
	kpis := make([]schemas.CommunityKPI, 0)
	if startDate == "" || endDate == "" {
		return kpis
	}

	inRange := make([]models.RentRollRecord, 0)
	for _, record := range records {
		if record.Date >= startDate && record.Date <= endDate {
			inRange = append(inRange, record)
		}
	}

	order := make([]string, 0)
	byProperty := make(map[string]*propertyRows)
	group := func(record models.RentRollRecord) *propertyRows {
		name := kpiPropertyName(record)
		rows, ok := byProperty[name]
		if !ok {
			rows = &propertyRows{}
			byProperty[name] = rows
			order = append(order, name)
		}
		return rows
	}
	for _, record := range inRange {
		if record.Date == startDate {
			rows := group(record)
			rows.startRows = append(rows.startRows, record)
		}
	}
	for _, record := range inRange {
		if record.Date == endDate {
			rows := group(record)
			rows.endRows = append(rows.endRows, record)
		}
	}

	timelines, unitOrder := buildTimelines(inRange)
	for _, name := range order {
		rows := byProperty[name]
		kpi := schemas.CommunityKPI{Name: name, NumUnits: len(rows.endRows)}
		kpi.AvgRent, kpi.Occupancy = rentAndOccupancy(rows.endRows)
		for _, key := range unitOrder[name] {
			moveIns, moveOuts := countMoves(timelines[key])
			kpi.MoveIns += moveIns
			kpi.MoveOuts += moveOuts
		}
		kpis = append(kpis, kpi)
	}
	return kpis
}

// rentAndOccupancy averages the rent of the occupied rows and the share of occupied rows.
// Rents that are not numeric add nothing to the sum but still count as occupied rows.
func rentAndOccupancy(endRows []models.RentRollRecord) (float64, float64) {
	occupied := 0
	total := 0.0
	for _, row := range endRows {
		if !row.Occupied() {
			continue
		}
		occupied++
		if rent, ok := row.Rent(); ok {
			total += rent
		}
	}
	if occupied == 0 {
		return 0, 0
	}
	return total / float64(occupied), float64(occupied) / float64(len(endRows))
}

func buildTimelines(records []models.RentRollRecord) (map[unitKey]unitTimeline, map[string][]unitKey) {
	byDate := make(map[unitKey]map[string]models.RentRollRecord)
	unitOrder := make(map[string][]unitKey)
	for _, record := range records {
		key := unitKey{property: kpiPropertyName(record), unit: record.UnitNumber}
		dates, ok := byDate[key]
		if !ok {
			dates = make(map[string]models.RentRollRecord)
			byDate[key] = dates
			unitOrder[key.property] = append(unitOrder[key.property], key)
		}
		dates[record.Date] = record
	}

	timelines := make(map[unitKey]unitTimeline, len(byDate))
	for key, dates := range byDate {
		timeline := make(unitTimeline, 0, len(dates))
		for _, record := range dates {
			timeline = append(timeline, record)
		}
		sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })
		timelines[key] = timeline
	}
	return timelines, unitOrder
}

// countMoves walks consecutive observations of a unit. The first observation is only a
// baseline. A change of resident between two occupied observations counts as a move-out and
// a move-in, unless either identity is blank.
func countMoves(timeline unitTimeline) (int, int) {
	moveIns, moveOuts := 0, 0
	for i := 1; i < len(timeline); i++ {
		prev, next := timeline[i-1], timeline[i]
		switch {
		case !prev.Occupied() && next.Occupied():
			moveIns++
		case prev.Occupied() && !next.Occupied():
			moveOuts++
		case prev.Occupied() && next.Occupied():
			prevResident, nextResident := prev.ResidentKey(), next.ResidentKey()
			if prevResident != "" && nextResident != "" && prevResident != nextResident {
				moveIns++
				moveOuts++
			}
		}
	}
	return moveIns, moveOuts
}
