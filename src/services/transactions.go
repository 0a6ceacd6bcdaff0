package services

import (
	"rentroll/src/models"
	"rentroll/src/schemas"
)

// MoveIn projects a move-in onto the rent roll. Every observation of the unit dated on or
// after the move-in date gets the new resident and rent. When the unit has no such
// observation a new record is appended for the move-in date. Incomplete input leaves the
// records untouched and applied is false.
func MoveIn(records []models.RentRollRecord, input schemas.MoveInInput) ([]models.RentRollRecord, bool) {
	if input.PropertyName == "" || input.UnitNumber == "" || input.Date == "" ||
		input.ResidentName == "" || input.MonthlyRent == "" {
		return records, false
	}
	rent, ok := models.ParseRent(input.MonthlyRent)
	if !ok {
		return records, false
	}
	monthlyRent := models.FormatRent(rent)

	next := make([]models.RentRollRecord, len(records), len(records)+1)
	copy(next, records)
	updated := false
	for i, record := range next {
		if !record.SameUnit(input.PropertyName, input.UnitNumber) || record.Date < input.Date {
			continue
		}
		record.ResidentName = input.ResidentName
		record.ResidentID = input.ResidentName
		record.MonthlyRent = monthlyRent
		next[i] = record
		updated = true
	}
	if updated {
		return next, true
	}

	base, found := findUnit(records, input.PropertyName, input.UnitNumber)
	if !found {
		base = models.RentRollRecord{PropertyName: input.PropertyName, UnitNumber: input.UnitNumber}
	}
	base.Date = input.Date
	base.PropertyName = input.PropertyName
	base.UnitNumber = input.UnitNumber
	base.ResidentName = input.ResidentName
	base.ResidentID = input.ResidentName
	base.MonthlyRent = monthlyRent
	return append(next, base), true
}

// MoveOut projects a move-out onto the rent roll, vacating every observation of the unit on or
// after the move-out date. When there is none, a vacant copy of an existing observation of the
// unit is appended; a unit that was never observed cannot be moved out of.
func MoveOut(records []models.RentRollRecord, input schemas.MoveOutInput) ([]models.RentRollRecord, bool) {
	if input.PropertyName == "" || input.UnitNumber == "" || input.Date == "" {
		return records, false
	}

	next := make([]models.RentRollRecord, len(records), len(records)+1)
	copy(next, records)
	updated := false
	for i, record := range next {
		if !record.SameUnit(input.PropertyName, input.UnitNumber) || record.Date < input.Date {
			continue
		}
		next[i] = vacate(record)
		updated = true
	}
	if updated {
		return next, true
	}

	base, found := findUnit(records, input.PropertyName, input.UnitNumber)
	if !found {
		return records, false
	}
	base.Date = input.Date
	return append(next, vacate(base)), true
}

func vacate(record models.RentRollRecord) models.RentRollRecord {
	record.ResidentName = ""
	record.ResidentID = ""
	record.MonthlyRent = "0"
	return record
}

func findUnit(records []models.RentRollRecord, propertyName, unitNumber string) (models.RentRollRecord, bool) {
	for _, record := range records {
		if record.SameUnit(propertyName, unitNumber) {
			return record, true
		}
	}
	return models.RentRollRecord{}, false
}
