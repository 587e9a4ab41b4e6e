package db

import (
	"context"
	"time"
)

// ContractRow joins each contract with its car for the staff listing.
type ContractRow struct {
	ContractID  uint      `json:"contract_id"`
	Date        time.Time `json:"date"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CarBrand    string    `json:"car_brand"`
	CarModel    string    `json:"car_model"`
	CarVIN      string    `gorm:"column:car_vin" json:"car_vin"`
}

func (r *Repo) ListContracts(ctx context.Context) ([]ContractRow, error) {
	var rows []ContractRow
	err := r.DB.WithContext(ctx).Table("contracts AS c").
		Select(`c.contract_id, c.date, c.client_name, c.client_phone, c.amount, c.status,
			car.brand AS car_brand, car.model AS car_model, car.vin AS car_vin`).
		Joins("JOIN cars car ON c.car_vin = car.vin").
		Order("c.date DESC").
		Scan(&rows).Error
	return rows, err
}
