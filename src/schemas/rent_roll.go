package schemas

import "rentroll/src/models"

const (
	OccupancyOccupied = "occupied"
	OccupancyVacant   = "vacant"
)

type CommunityKPI struct {
	Name      string  `json:"name"`
	AvgRent   float64 `json:"avgRent"`
	Occupancy float64 `json:"occupancy"`
	MoveIns   int     `json:"moveIns"`
	MoveOuts  int     `json:"moveOuts"`
	NumUnits  int     `json:"numUnits"`
}

type UnitOption struct {
	PropertyName string `json:"propertyName"`
	UnitNumber   string `json:"unitNumber"`
}

type UnitListings struct {
	VacantUnits   []UnitOption `json:"vacantUnits"`
	OccupiedUnits []UnitOption `json:"occupiedUnits"`
}

// RentRollFilters narrows a snapshot down to the rows shown in the rent roll table.
type RentRollFilters struct {
	SnapshotDate string
	PropertyName string
	Occupancy    string
	Search       string
}

// ViewFilters holds every input of the derived view. Empty values fall back to defaults.
type ViewFilters struct {
	RentRollFilters
	StartDate string
	EndDate   string
}

type ViewModel struct {
	SnapshotDate  string                  `json:"snapshotDate"`
	StartDate     string                  `json:"startDate"`
	EndDate       string                  `json:"endDate"`
	RangeDays     int                     `json:"rangeDays"`
	Rows          []models.RentRollRecord `json:"rows"`
	Properties    []string                `json:"properties"`
	VacantUnits   []UnitOption            `json:"vacantUnits"`
	OccupiedUnits []UnitOption            `json:"occupiedUnits"`
	KPIs          []CommunityKPI          `json:"kpis"`
	Error         string                  `json:"error,omitempty"`
}

type KPIResponse struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	RangeDays int            `json:"rangeDays"`
	KPIs      []CommunityKPI `json:"kpis"`
}

type RefreshResponse struct {
	Source  string `json:"source"`
	Records int    `json:"records"`
}
