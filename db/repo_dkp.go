package db

import (
	"context"
	"errors"

	"car_dealership_api/models"

	"gorm.io/gorm"
)

// DKPDraft is the prefill for the document form: seller is the assigned
// manager, buyer is the requesting client, vehicle fields come from the car.
type DKPDraft struct {
	ManagerFullName string  `json:"manager_full_name"`
	ClientFullName  string  `json:"client_full_name"`
	CarVIN          string  `gorm:"column:car_vin" json:"car_vin"`
	CarBrand        string  `json:"car_brand"`
	CarModel        string  `json:"car_model"`
	CarYear         int     `json:"car_year"`
	CarPrice        float64 `json:"car_price"`
}

// InitDKP walks appointment -> contract -> car plus the requester and the
// assigned manager. Inner joins on every leg: a missing manager (or any other
// leg) means there is nothing to prefill yet.
func (r *Repo) InitDKP(ctx context.Context, appointmentID uint) (*DKPDraft, error) {
	var draft DKPDraft
	err := r.DB.WithContext(ctx).Table("appointments AS a").
		Select(`m.full_name AS manager_full_name, u.full_name AS client_full_name,
			car.vin AS car_vin, car.brand AS car_brand, car.model AS car_model,
			car.year AS car_year, car.price AS car_price`).
		Joins("JOIN contracts c ON a.contract_id = c.contract_id").
		Joins("JOIN cars car ON c.car_vin = car.vin").
		Joins("JOIN users u ON a.user_id = u.id").
		Joins("JOIN users m ON a.manager_id = m.id").
		Where("a.appointment_id = ?", appointmentID).
		Take(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDKPIncomplete
		}
		return nil, err
	}
	return &draft, nil
}

// CreateDKP validates the appointment before issuing: it must exist, must
// have an assigned manager, and must not be Cancelled. At most one document
// per appointment; the unique index on appointment_id backs the check.
func (r *Repo) CreateDKP(ctx context.Context, d *models.DKP) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a models.Appointment
		if err := tx.First(&a, "appointment_id = ?", d.AppointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if a.ManagerID == nil {
			return ErrDKPIncomplete
		}
		if a.Status == models.AppointmentCancelled {
			return ErrAppointmentCancelled
		}

		var n int64
		if err := tx.Model(&models.DKP{}).
			Where("appointment_id = ?", d.AppointmentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDKPExists
		}
		return tx.Create(d).Error
	})
}

func (r *Repo) FindDKPByID(ctx context.Context, id uint) (*models.DKP, error) {
	var d models.DKP
	if err := r.DB.WithContext(ctx).First(&d, "dkp_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
