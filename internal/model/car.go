package model

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CarType is the body style of a car model.
type CarType string

const (
	CarTypeSedan     CarType = "Sedan"
	CarTypeSUV       CarType = "SUV"
	CarTypeWagon     CarType = "Wagon"
	CarTypeTruck     CarType = "Truck"
	CarTypeHatchback CarType = "Hatchback"
)

const (
	// MinModelYear and MaxModelYear bound CarModel.Year on write.
	MinModelYear = 2015
	MaxModelYear = 2023
)

var (
	// ErrInvalidYear is returned when a CarModel year is outside [MinModelYear, MaxModelYear].
	ErrInvalidYear = errors.New("car model year out of range")
	// ErrInvalidCarType is returned for a car type outside the known set.
	ErrInvalidCarType = errors.New("unknown car type")
	// ErrMakeRequired is returned when a CarModel has no make.
	ErrMakeRequired = errors.New("car model requires a make")
)

// Valid reports whether t is one of the known car types.
func (t CarType) Valid() bool {
	switch t {
	case CarTypeSedan, CarTypeSUV, CarTypeWagon, CarTypeTruck, CarTypeHatchback:
		return true
	}
	return false
}

// CarMake is a manufacturer. Deleting one removes its models.
type CarMake struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text"`

	// Relations
	Models []CarModel `json:"models,omitempty" gorm:"foreignKey:MakeID;constraint:OnDelete:CASCADE"`
}

// CarModel is a model sold under a CarMake, optionally tied to a dealer.
type CarModel struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	MakeID   uint    `json:"make_id" gorm:"not null;index"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	CarType  CarType `json:"car_type" gorm:"size:10;not null;default:'Sedan'"`
	Year     int     `json:"year" gorm:"not null"`
	DealerID int     `json:"dealer_id" gorm:"not null;default:0"`
}

// Validate checks the write-time invariants of a CarModel.
func (m *CarModel) Validate() error {
	if m.MakeID == 0 {
		return ErrMakeRequired
	}
	if m.Year < MinModelYear || m.Year > MaxModelYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidYear, m.Year, MinModelYear, MaxModelYear)
	}
	if !m.CarType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCarType, m.CarType)
	}
	return nil
}

// BeforeSave defaults the car type and enforces Validate before every write.
func (m *CarModel) BeforeSave(tx *gorm.DB) error {
	if m.CarType == "" {
		m.CarType = CarTypeSedan
	}
	return m.Validate()
}
