package models

import "time"

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

func ValidAppointmentStatus(s string) bool {
	return s == AppointmentScheduled || s == AppointmentCompleted || s == AppointmentCancelled
}

// PurposePickup is stamped on the appointment a booking creates.
const PurposePickup = "Car pickup and contract signing"

// Appointment links a contract to the requesting client and, once one claims
// it, to a manager. ManagerID is nullable: assignment happens with a
// conditional UPDATE ... WHERE manager_id IS NULL so two managers can never
// own the same appointment.
type Appointment struct {
	AppointmentID   uint      `gorm:"primaryKey;column:appointment_id" json:"appointment_id"`
	ContractID      uint      `gorm:"not null;index" json:"contract_id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	ManagerID       *uint     `gorm:"index" json:"manager_id,omitempty"`
	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	DurationMinutes int       `gorm:"not null;default:60" json:"duration_minutes"`
	Purpose         string    `gorm:"size:255" json:"purpose"`
	Status          string    `gorm:"size:16;not null;default:'Scheduled'" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
