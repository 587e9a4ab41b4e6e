package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"car_dealership_api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "pass"),
		getEnv("DB_NAME", "car_system"),
		getEnv("DB_PORT", "5432"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Contract{},
		&models.Appointment{},
		&models.DKP{},
	); err != nil {
		return err
	}

	// The manager board lists unassigned appointments first.
	return conn.Exec(`
	  CREATE INDEX IF NOT EXISTS appointments_unassigned_by_date
	  ON appointments (appointment_date DESC)
	  WHERE manager_id IS NULL;
	`).Error
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
