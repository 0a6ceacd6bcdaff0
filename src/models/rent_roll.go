package models

import (
	"math"
	"strconv"
	"strings"
)

// RentRollRecord is one row of the rent roll: a unit of a property observed on a date.
type RentRollRecord struct {
	Date         string `db:"date" json:"date"`
	PropertyID   string `db:"property_id" json:"propertyId"`
	PropertyName string `db:"property_name" json:"propertyName"`
	UnitNumber   string `db:"unit_number" json:"unitNumber"`
	ResidentID   string `db:"resident_id" json:"residentId"`
	ResidentName string `db:"resident_name" json:"residentName"`
	MonthlyRent  string `db:"monthly_rent" json:"monthlyRent"`
}

// Occupied reports whether a resident lives in the unit at this snapshot.
func (r RentRollRecord) Occupied() bool {
	return strings.TrimSpace(r.ResidentName) != ""
}

// ResidentKey identifies the resident, falling back to the name when no id is recorded.
func (r RentRollRecord) ResidentKey() string {
	if r.ResidentID != "" {
		return r.ResidentID
	}
	return r.ResidentName
}

// Rent returns the monthly rent as a number. A blank rent is 0; ok is false when the value
// is not numeric.
func (r RentRollRecord) Rent() (float64, bool) {
	return ParseRent(r.MonthlyRent)
}

// SameUnit reports whether the record belongs to the given property unit.
func (r RentRollRecord) SameUnit(propertyName, unitNumber string) bool {
	return r.PropertyName == propertyName && r.UnitNumber == unitNumber
}

// ParseRent parses a rent value the way the rent roll stores it.
func ParseRent(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}
	rent, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(rent) || math.IsInf(rent, 0) {
		return 0, false
	}
	return rent, true
}

// FormatRent renders a rent the way mutations write it back into the store.
func FormatRent(rent float64) string {
	return strconv.FormatFloat(rent, 'f', -1, 64)
}
