package schemas

import (
	"bytes"
	"encoding/json"
)

// RentValue accepts a rent written either as a JSON number or as a string.
type RentValue string

func (v *RentValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RentValue(s)
		return nil
	}
	*v = RentValue(data)
	return nil
}

// MoveInInput is the projection input of a move-in. MonthlyRent is kept as text so that a
// non-numeric value can be rejected by the projection itself.
type MoveInInput struct {
	PropertyName string
	UnitNumber   string
	Date         string
	ResidentName string
	MonthlyRent  string
}

type MoveOutInput struct {
	PropertyName string
	UnitNumber   string
	Date         string
}

type MoveInRequest struct {
	PropertyName string    `json:"propertyName" validate:"required"`
	UnitNumber   string    `json:"unitNumber" validate:"required"`
	Date         string    `json:"date" validate:"required"`
	ResidentName string    `json:"residentName" validate:"required"`
	MonthlyRent  RentValue `json:"monthlyRent" validate:"required"`
}

func (r MoveInRequest) ToInput() MoveInInput {
	return MoveInInput{
		PropertyName: r.PropertyName,
		UnitNumber:   r.UnitNumber,
		Date:         r.Date,
		ResidentName: r.ResidentName,
		MonthlyRent:  string(r.MonthlyRent),
	}
}

type MoveOutRequest struct {
	PropertyName string `json:"propertyName" validate:"required"`
	UnitNumber   string `json:"unitNumber" validate:"required"`
	Date         string `json:"date" validate:"required"`
}

func (r MoveOutRequest) ToInput() MoveOutInput {
	return MoveOutInput{PropertyName: r.PropertyName, UnitNumber: r.UnitNumber, Date: r.Date}
}

type TransactionResponse struct {
	Applied bool `json:"applied"`
	Records int  `json:"records"`
}
