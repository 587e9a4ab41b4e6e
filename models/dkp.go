package models

import "time"

// DKP is the bill-of-sale document issued when a vehicle deal is finalized.
// It is a denormalized snapshot of the seller/buyer/vehicle fields at issue
// time: rows are written once and never updated, the PDF is derived on demand.
// One document per appointment, enforced by the unique index.
type DKP struct {
	DKPID         uint      `gorm:"primaryKey;column:dkp_id" json:"dkp_id"`
	AppointmentID uint      `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Place         string    `gorm:"size:255" json:"place"`
	Date          string    `gorm:"size:32" json:"date"`
	OwnerFullname string    `gorm:"size:255;not null" json:"owner_fullname"`
	BuyerFullname string    `gorm:"size:255;not null" json:"buyer_fullname"`
	VIN           string    `gorm:"column:vin;size:17;not null" json:"vin"`
	CarBrandModel string    `gorm:"size:128" json:"car_brand_model"`
	CarYear       int       `json:"car_year"`
	EngineNumber  string    `gorm:"size:64" json:"engine_number,omitempty"`
	ChassisNumber string    `gorm:"size:64" json:"chassis_number,omitempty"`
	BodyNumber    string    `gorm:"size:64" json:"body_number,omitempty"`
	Color         string    `gorm:"size:64" json:"color,omitempty"`
	Price         float64   `json:"price"`
	Copies        int       `gorm:"not null;default:2" json:"copies"`
	CreatedAt     time.Time `json:"created_at"`
}

func (DKP) TableName() string { return "dkp_documents" }
