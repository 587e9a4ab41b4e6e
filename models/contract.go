package models

import "time"

const ContractActive = "Active"

// Contract is created atomically with a booking and is immutable afterwards
// except for staff-driven status changes.
type Contract struct {
	ContractID  uint      `gorm:"primaryKey;column:contract_id" json:"contract_id"`
	ClientName  string    `gorm:"size:255;not null" json:"client_name"`
	ClientPhone string    `gorm:"size:32" json:"client_phone"`
	CarVIN      string    `gorm:"column:car_vin;size:17;not null;index" json:"car_vin"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Status      string    `gorm:"size:16;not null;default:'Active'" json:"status"`
	Date        time.Time `gorm:"index" json:"date"`
}
