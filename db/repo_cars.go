package db

import (
	"context"
	"time"

	"car_dealership_api/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateCar(ctx context.Context, car *models.Car) error {
	return r.DB.WithContext(ctx).Create(car).Error
}

func (r *Repo) FindCarByVIN(ctx context.Context, vin string) (*models.Car, error) {
	var car models.Car
	if err := r.DB.WithContext(ctx).First(&car, "vin = ?", vin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

func (r *Repo) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := r.DB.WithContext(ctx).Order("post_date DESC").Find(&cars).Error
	return cars, err
}

type BookingInput struct {
	UserID      uint
	ClientName  string
	ClientPhone string
	Amount      float64
}

type BookingResult struct {
	ContractID    uint
	AppointmentID uint
}

// BookCar flips the car out of Available and creates the contract and the
// pickup appointment in one transaction. The status flip is a single
// conditional UPDATE, so two concurrent bookings on the same VIN cannot both
// succeed: the loser sees zero affected rows. Any later failure rolls back
// the flip along with everything else.
func (r *Repo) BookCar(ctx context.Context, vin string, in BookingInput) (*BookingResult, error) {
	var out BookingResult
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Car{}).
			Where("vin = ? AND status = ?", vin, models.CarAvailable).
			Updates(map[string]interface{}{
				"status":     models.CarRented,
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Zero rows: either no such VIN or someone else took the car.
			var n int64
			if err := tx.Model(&models.Car{}).Where("vin = ?", vin).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrNotFound
			}
			return ErrCarUnavailable
		}

		contract := models.Contract{
			ClientName:  in.ClientName,
			ClientPhone: in.ClientPhone,
			CarVIN:      vin,
			Amount:      in.Amount,
			Status:      models.ContractActive,
			Date:        time.Now().UTC(),
		}
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}

		appt := models.Appointment{
			ContractID:      contract.ContractID,
			UserID:          in.UserID,
			AppointmentDate: time.Now().UTC().Add(24 * time.Hour),
			DurationMinutes: 60,
			Purpose:         models.PurposePickup,
			Status:          models.AppointmentScheduled,
		}
		if err := tx.Create(&appt).Error; err != nil {
			return err
		}

		out = BookingResult{ContractID: contract.ContractID, AppointmentID: appt.AppointmentID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
