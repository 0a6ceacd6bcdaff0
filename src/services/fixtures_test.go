package services_test

import "rentroll/src/models"

func record(date, propertyID, propertyName, unit, residentID, residentName, rent string) models.RentRollRecord {
	return models.RentRollRecord{
		Date:         date,
		PropertyID:   propertyID,
		PropertyName: propertyName,
		UnitNumber:   unit,
		ResidentID:   residentID,
		ResidentName: residentName,
		MonthlyRent:  rent,
	}
}

// fixtureRentRoll mirrors testdata/rent_roll.csv at the repository root.
func fixtureRentRoll() []models.RentRollRecord {
	return []models.RentRollRecord{
		record("2024-12-03", "1", "Sunset Gardens", "P1-U01", "", "", "0"),
		record("2024-12-03", "1", "Sunset Gardens", "P1-U02", "A1", "Resident A", "1000"),
		record("2024-12-04", "1", "Sunset Gardens", "P1-U01", "", "", "0"),
		record("2024-12-04", "1", "Sunset Gardens", "P1-U02", "A1", "Resident A", "1000"),
		record("2024-12-05", "1", "Sunset Gardens", "P1-U01", "B1", "Resident B", "1200"),
		record("2024-12-05", "1", "Sunset Gardens", "P1-U02", "A1", "Resident A", "1000"),
		record("2024-12-03", "2", "Meadowbrook Senior Living", "P2-U01", "C1", "Resident C", "900"),
		record("2024-12-04", "2", "Meadowbrook Senior Living", "P2-U01", "D1", "Resident D", "950"),
		record("2024-12-05", "2", "Meadowbrook Senior Living", "P2-U01", "D1", "Resident D", "950"),
	}
}
