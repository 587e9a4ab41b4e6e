package db

import (
	"context"
	"time"

	"car_dealership_api/models"

	"gorm.io/gorm"
)

func (r *Repo) FindAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.DB.WithContext(ctx).First(&a, "appointment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// AssignManager claims an appointment for a manager. The WHERE manager_id IS
// NULL clause makes the claim atomic: of two concurrent assigns at most one
// affects a row, the other gets ErrAlreadyAssigned.
func (r *Repo) AssignManager(ctx context.Context, appointmentID, managerID uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_id = ? AND manager_id IS NULL", appointmentID).
		Update("manager_id", managerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyAssigned
	}
	return nil
}

// UnassignManager releases an appointment, but only for the manager that
// currently holds it.
func (r *Repo) UnassignManager(ctx context.Context, appointmentID, managerID uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_id = ? AND manager_id = ?", appointmentID, managerID).
		Update("manager_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotAssignee
	}
	return nil
}

type UpdateAppointmentInput struct {
	AppointmentDate time.Time
	DurationMinutes int
	Purpose         string
	Status          string
	Notes           string
}

// UpdateAppointment overwrites the staff-editable fields by id.
func (r *Repo) UpdateAppointment(ctx context.Context, id uint, in UpdateAppointmentInput) (*models.Appointment, error) {
	if _, err := r.FindAppointmentByID(ctx, id); err != nil {
		return nil, err
	}
	err := r.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("appointment_id = ?", id).
		Updates(map[string]interface{}{
			"appointment_date": in.AppointmentDate,
			"duration_minutes": in.DurationMinutes,
			"purpose":          in.Purpose,
			"status":           in.Status,
			"notes":            in.Notes,
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindAppointmentByID(ctx, id)
}

// UserAppointmentRow is the client-facing projection: the caller's own
// appointments with the car and (optionally) the assigned manager.
type UserAppointmentRow struct {
	AppointmentID   uint      `json:"appointment_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	ContractID      uint      `json:"contract_id"`
	CarBrand        string    `json:"car_brand"`
	CarModel        string    `json:"car_model"`
	CarVIN          string    `gorm:"column:car_vin" json:"car_vin"`
	ManagerName     *string   `json:"manager_name"`
	ManagerEmail    *string   `json:"manager_email"`
}

func (r *Repo) ListUserAppointments(ctx context.Context, userID uint) ([]UserAppointmentRow, error) {
	var rows []UserAppointmentRow
	err := r.DB.WithContext(ctx).Table("appointments AS a").
		Select(`a.appointment_id, a.appointment_date, a.duration_minutes, a.purpose, a.status, a.notes,
			c.contract_id, car.brand AS car_brand, car.model AS car_model, car.vin AS car_vin,
			m.full_name AS manager_name, m.email AS manager_email`).
		Joins("JOIN contracts c ON a.contract_id = c.contract_id").
		Joins("JOIN cars car ON c.car_vin = car.vin").
		Joins("LEFT JOIN users m ON a.manager_id = m.id").
		Where("a.user_id = ?", userID).
		Order("a.appointment_date DESC").
		Scan(&rows).Error
	return rows, err
}

// ManagerAppointmentRow is the staff board projection: every appointment with
// both the client and the manager legs, unassigned ones first.
type ManagerAppointmentRow struct {
	AppointmentID   uint      `json:"appointment_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	ManagerID       *uint     `json:"manager_id"`
	ContractID      uint      `json:"contract_id"`
	CarBrand        string    `json:"car_brand"`
	CarModel        string    `json:"car_model"`
	CarVIN          string    `gorm:"column:car_vin" json:"car_vin"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	ManagerName     *string   `json:"manager_name"`
}

func (r *Repo) ListManagerAppointments(ctx context.Context) ([]ManagerAppointmentRow, error) {
	var rows []ManagerAppointmentRow
	err := r.DB.WithContext(ctx).Table("appointments AS a").
		Select(`a.appointment_id, a.appointment_date, a.duration_minutes, a.purpose, a.status, a.notes,
			a.manager_id, c.contract_id, car.brand AS car_brand, car.model AS car_model, car.vin AS car_vin,
			c.client_name, c.client_phone,
			u.full_name AS user_name, u.email AS user_email,
			m.full_name AS manager_name`).
		Joins("JOIN contracts c ON a.contract_id = c.contract_id").
		Joins("JOIN cars car ON c.car_vin = car.vin").
		Joins("JOIN users u ON a.user_id = u.id").
		Joins("LEFT JOIN users m ON a.manager_id = m.id").
		Order("CASE WHEN a.manager_id IS NULL THEN 0 ELSE 1 END, a.appointment_date DESC").
		Scan(&rows).Error
	return rows, err
}
