package db

import (
	"errors"

	"gorm.io/gorm"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Precondition failures the controllers translate to HTTP statuses.
// Conflict-style errors mean the row exists but its current state refused
// the operation; ErrNotFound means no row by that key.
var (
	ErrNotFound             = errors.New("not found")
	ErrCarUnavailable       = errors.New("car is not available for booking")
	ErrAlreadyAssigned      = errors.New("appointment not found or already assigned to another manager")
	ErrNotAssignee          = errors.New("appointment not found or manager not assigned")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrDKPExists            = errors.New("document already issued for this appointment")
	ErrDKPIncomplete        = errors.New("appointment, contract, car or assigned manager is missing")
	ErrAppointmentCancelled = errors.New("cannot issue a document for a cancelled appointment")
)
