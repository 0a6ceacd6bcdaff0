package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentroll/src/models"
	"rentroll/src/utils"
)

func TestReadRentRollCSV(t *testing.T) {
	records, err := utils.ReadRentRollCSV("../../testdata/rent_roll.csv")
	require.NoError(t, err)
	require.Len(t, records, 9)

	assert.Equal(t, models.RentRollRecord{
		Date:         "2024-12-03",
		PropertyID:   "1",
		PropertyName: "Sunset Gardens",
		UnitNumber:   "P1-U01",
		ResidentID:   "",
		ResidentName: "",
		MonthlyRent:  "0",
	}, records[0])
	assert.Equal(t, "Resident D", records[8].ResidentName)

	t.Run("missing file", func(t *testing.T) {
		_, err := utils.ReadRentRollCSV("./does-not-exist.csv")
		assert.Error(t, err)
	})
}

func TestParseRentRollCSV(t *testing.T) {
	t.Run("header names are trimmed and extra columns ignored", func(t *testing.T) {
		csv := "\ufeffdate, property_id ,property_name,unit_number,resident_id,resident_name,monthly_rent,notes\n" +
			"2024-12-03,1,Sunset Gardens,P1-U02,A1,Resident A,1000,corner unit\n"
		records, err := utils.ParseRentRollCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "1", records[0].PropertyID)
		assert.Equal(t, "1000", records[0].MonthlyRent)
	})

	t.Run("values are kept as text", func(t *testing.T) {
		csv := "date,property_id,property_name,unit_number,resident_id,resident_name,monthly_rent\n" +
			"2024-12-03,007,Sunset Gardens,0101,,,1000.00\n"
		records, err := utils.ParseRentRollCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "007", records[0].PropertyID)
		assert.Equal(t, "0101", records[0].UnitNumber)
		assert.Equal(t, "1000.00", records[0].MonthlyRent)
	})

	t.Run("header without rows is an empty rent roll", func(t *testing.T) {
		csv := "date,property_id,property_name,unit_number,resident_id,resident_name,monthly_rent\n"
		records, err := utils.ParseRentRollCSV(strings.NewReader(csv))
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("header without rows still needs every column", func(t *testing.T) {
		csv := "date,property_id,property_name,unit_number\n"
		_, err := utils.ParseRentRollCSV(strings.NewReader(csv))
		assert.ErrorContains(t, err, "resident_id")
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := utils.ParseRentRollCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		csv := "date,property_id,property_name,unit_number\n2024-12-03,1,Sunset Gardens,P1-U01\n"
		_, err := utils.ParseRentRollCSV(strings.NewReader(csv))
		assert.ErrorContains(t, err, "resident_id")
	})
}
