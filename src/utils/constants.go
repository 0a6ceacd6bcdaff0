package utils

const ShortDashDateLayout = "2006-01-02"

// Columns every rent roll source must provide.
const (
	ColumnDate         = "date"
	ColumnPropertyID   = "property_id"
	ColumnPropertyName = "property_name"
	ColumnUnitNumber   = "unit_number"
	ColumnResidentID   = "resident_id"
	ColumnResidentName = "resident_name"
	ColumnMonthlyRent  = "monthly_rent"
)

var RentRollColumns = []string{
	ColumnDate,
	ColumnPropertyID,
	ColumnPropertyName,
	ColumnUnitNumber,
	ColumnResidentID,
	ColumnResidentName,
	ColumnMonthlyRent,
}
