package controllers

import (
	"net/http"
	"time"

	"car_dealership_api/app"
	"car_dealership_api/db"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
)

type CarController struct{ *Srv }

func NewCarController(s *Srv) *CarController { return &CarController{Srv: s} }

// GET /api/cars
// The inner {data, messages} shape is what the web client expects.
func (cc *CarController) ListCars(c *gin.Context) {
	cars, err := cc.Repo.ListCars(c.Request.Context())
	if err != nil {
		cc.logErr("list_cars", err)
		respondErr(c, http.StatusInternalServerError, "Cars loading failed")
		return
	}
	respond(c, app.H{"data": cars, "messages": nil})
}

// POST /api/cars (administrator)
func (cc *CarController) CreateCar(c *gin.Context) {
	var in struct {
		VIN       string  `json:"VIN" binding:"required"`
		Brand     string  `json:"mark" binding:"required"`
		Model     string  `json:"model" binding:"required"`
		Year      int     `json:"prodYear" binding:"required"`
		Price     float64 `json:"amount" binding:"required"`
		Mileage   int     `json:"mileage"`
		Condition string  `json:"condition"`
		Img       string  `json:"img"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	car := models.Car{
		VIN:       in.VIN,
		Brand:     in.Brand,
		Model:     in.Model,
		Year:      in.Year,
		Price:     in.Price,
		Mileage:   in.Mileage,
		Condition: in.Condition,
		Status:    models.CarAvailable,
		Img:       in.Img,
		PostDate:  time.Now().UTC(),
	}
	if err := cc.Repo.CreateCar(c.Request.Context(), &car); err != nil {
		cc.logErr("create_car", err)
		respondErr(c, http.StatusInternalServerError, "Car creation failed")
		return
	}
	respond(c, app.H{"car": car})
}

// POST /api/cars/:vin/book
// The requesting user comes from the session, never from the body.
func (cc *CarController) Book(c *gin.Context) {
	vin := c.Param("vin")
	if vin == "" {
		respondErr(c, http.StatusBadRequest, "missing vin")
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in struct {
		ClientName  string  `json:"client_name" binding:"required"`
		ClientPhone string  `json:"client_phone"`
		Amount      float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	res, err := cc.Repo.BookCar(c.Request.Context(), vin, db.BookingInput{
		UserID:      uid,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Amount:      in.Amount,
	})
	if err != nil {
		switch err {
		case db.ErrNotFound:
			respondErr(c, http.StatusNotFound, "Car not found")
		case db.ErrCarUnavailable:
			respondErr(c, http.StatusBadRequest, "Car is not available for booking")
		default:
			cc.logErr("book_car", err)
			respondErr(c, http.StatusInternalServerError, "Booking failed: "+err.Error())
		}
		return
	}

	respond(c, app.H{
		"message":        "Car booked successfully",
		"contract_id":    res.ContractID,
		"appointment_id": res.AppointmentID,
	})
}
