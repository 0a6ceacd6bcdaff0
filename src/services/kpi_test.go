package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentroll/src/models"
	"rentroll/src/schemas"
	"rentroll/src/services"
)

func kpiByName(t *testing.T, kpis []schemas.CommunityKPI, name string) schemas.CommunityKPI {
	t.Helper()
	for _, kpi := range kpis {
		if kpi.Name == name {
			return kpi
		}
	}
	t.Fatalf("no kpi for %q in %+v", name, kpis)
	return schemas.CommunityKPI{}
}

func TestDeriveKPIs(t *testing.T) {
	t.Run("fixture range yields expected values per property", func(t *testing.T) {
		kpis := services.DeriveKPIs(fixtureRentRoll(), "2024-12-03", "2024-12-05")
		require.Len(t, kpis, 2)
		assert.Equal(t, "Sunset Gardens", kpis[0].Name)
		assert.Equal(t, "Meadowbrook Senior Living", kpis[1].Name)

		sunset := kpis[0]
		assert.InDelta(t, 1100, sunset.AvgRent, 1e-9)
		assert.InDelta(t, 1.0, sunset.Occupancy, 1e-9)
		assert.Equal(t, 1, sunset.MoveIns)
		assert.Equal(t, 0, sunset.MoveOuts)
		assert.Equal(t, 2, sunset.NumUnits)

		meadow := kpis[1]
		assert.InDelta(t, 950, meadow.AvgRent, 1e-9)
		assert.InDelta(t, 1.0, meadow.Occupancy, 1e-9)
		assert.Equal(t, 1, meadow.MoveIns)
		assert.Equal(t, 1, meadow.MoveOuts)
		assert.Equal(t, 1, meadow.NumUnits)
	})

	t.Run("missing bound yields an empty list", func(t *testing.T) {
		kpis := services.DeriveKPIs(fixtureRentRoll(), "", "2024-12-05")
		assert.NotNil(t, kpis)
		assert.Empty(t, kpis)

		kpis = services.DeriveKPIs(fixtureRentRoll(), "2024-12-03", "")
		assert.Empty(t, kpis)
	})

	t.Run("empty collection yields an empty list", func(t *testing.T) {
		assert.Empty(t, services.DeriveKPIs(nil, "2024-12-03", "2024-12-05"))
	})

	t.Run("single day range has no moves", func(t *testing.T) {
		kpis := services.DeriveKPIs(fixtureRentRoll(), "2024-12-04", "2024-12-04")
		require.Len(t, kpis, 2)
		for _, kpi := range kpis {
			assert.Zero(t, kpi.MoveIns, kpi.Name)
			assert.Zero(t, kpi.MoveOuts, kpi.Name)
		}
		sunset := kpiByName(t, kpis, "Sunset Gardens")
		assert.InDelta(t, 0.5, sunset.Occupancy, 1e-9)
		assert.InDelta(t, 1000, sunset.AvgRent, 1e-9)
	})

	t.Run("property observed only on the start date has zero units", func(t *testing.T) {
		records := []models.RentRollRecord{
			record("2024-12-03", "1", "Sunset Gardens", "P1-U01", "A1", "Resident A", "1000"),
			record("2024-12-03", "9", "Closed Place", "P9-U01", "Z1", "Resident Z", "500"),
			record("2024-12-05", "1", "Sunset Gardens", "P1-U01", "A1", "Resident A", "1000"),
		}
		kpis := services.DeriveKPIs(records, "2024-12-03", "2024-12-05")
		closed := kpiByName(t, kpis, "Closed Place")
		assert.Equal(t, 0, closed.NumUnits)
		assert.Zero(t, closed.AvgRent)
		assert.Zero(t, closed.Occupancy)
	})

	t.Run("unit skipping a date still counts the move-in", func(t *testing.T) {
		records := []models.RentRollRecord{
			record("2024-12-03", "1", "Sunset Gardens", "P1-U01", "", "", "0"),
			record("2024-12-04", "1", "Sunset Gardens", "P1-U02", "A1", "Resident A", "1000"),
			record("2024-12-05", "1", "Sunset Gardens", "P1-U01", "B1", "Resident B", "1200"),
		}
		kpis := services.DeriveKPIs(records, "2024-12-03", "2024-12-05")
		assert.Equal(t, 1, kpiByName(t, kpis, "Sunset Gardens").MoveIns)
	})

	t.Run("turnover without resident ids compares names", func(t *testing.T) {
		records := []models.RentRollRecord{
			record("2024-12-03", "1", "Sunset Gardens", "P1-U01", "", "Resident A", "1000"),
			record("2024-12-05", "1", "Sunset Gardens", "P1-U01", "", "Resident B", "1100"),
		}
		kpi := kpiByName(t, services.DeriveKPIs(records, "2024-12-03", "2024-12-05"), "Sunset Gardens")
		assert.Equal(t, 1, kpi.MoveIns)
		assert.Equal(t, 1, kpi.MoveOuts)
	})

	t.Run("non-numeric rent counts as occupied but adds nothing", func(t *testing.T) {
		records := []models.RentRollRecord{
			record("2024-12-05", "1", "Sunset Gardens", "P1-U01", "A1", "Resident A", "1000"),
			record("2024-12-05", "1", "Sunset Gardens", "P1-U02", "B1", "Resident B", "n/a"),
		}
		kpi := kpiByName(t, services.DeriveKPIs(records, "2024-12-05", "2024-12-05"), "Sunset Gardens")
		assert.InDelta(t, 500, kpi.AvgRent, 1e-9)
		assert.InDelta(t, 1.0, kpi.Occupancy, 1e-9)
	})

	t.Run("blank property names are grouped as Unknown", func(t *testing.T) {
		records := []models.RentRollRecord{
			record("2024-12-05", "", "", "U1", "A1", "Resident A", "1000"),
		}
		kpis := services.DeriveKPIs(records, "2024-12-05", "2024-12-05")
		require.Len(t, kpis, 1)
		assert.Equal(t, "Unknown", kpis[0].Name)
	})

	t.Run("repeated derivations are identical", func(t *testing.T) {
		records := append(fixtureRentRoll(),
			record("2024-12-04", "3", "Oakwood Care Community", "P3-U01", "E1", "Resident E", "800"),
			record("2024-12-05", "3", "Oakwood Care Community", "P3-U01", "", "", "0"),
			record("2024-12-05", "3", "Oakwood Care Community", "P3-U02", "F1", "Resident F", "850"),
		)
		first := services.DeriveKPIs(records, "2024-12-03", "2024-12-05")
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, services.DeriveKPIs(records, "2024-12-03", "2024-12-05"))
		}

		view := services.DeriveView(records, schemas.ViewFilters{})
		for i := 0; i < 20; i++ {
			assert.Equal(t, view, services.DeriveView(records, schemas.ViewFilters{}))
		}
	})

	t.Run("occupancy stays within bounds", func(t *testing.T) {
		for _, kpi := range services.DeriveKPIs(fixtureRentRoll(), "2024-12-03", "2024-12-05") {
			assert.GreaterOrEqual(t, kpi.Occupancy, 0.0)
			assert.LessOrEqual(t, kpi.Occupancy, 1.0)
		}
	})
}
