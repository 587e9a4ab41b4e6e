package models

import "time"

// Car status lifecycle. Only one booking may move a car out of Available;
// the flip is done with a conditional UPDATE keyed on the current status.
const (
	CarAvailable = "Available"
	CarRented    = "Rented"
	CarSold      = "Sold"
)

// Car is listed by its VIN. JSON field names match what the web client
// expects (mark/prodYear/amount are historical aliases).
type Car struct {
	VIN       string    `gorm:"primaryKey;column:vin;size:17" json:"VIN"`
	Brand     string    `gorm:"size:64;not null" json:"mark"`
	Model     string    `gorm:"size:64;not null" json:"model"`
	Year      int       `gorm:"not null" json:"prodYear"`
	Price     float64   `gorm:"not null" json:"amount"`
	Mileage   int       `json:"mileage"`
	Condition string    `gorm:"size:64" json:"condition"`
	Status    string    `gorm:"size:16;not null;default:'Available';index" json:"status"`
	Img       string    `gorm:"size:512" json:"img,omitempty"`
	PostDate  time.Time `gorm:"index" json:"postDate"`
	UpdatedAt time.Time `json:"-"`
}
