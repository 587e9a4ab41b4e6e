package controllers

import (
	"fmt"
	"net/http"

	"car_dealership_api/app"
	"car_dealership_api/db"
	"car_dealership_api/models"
	"car_dealership_api/pdf"

	"github.com/gin-gonic/gin"
)

type DKPController struct{ *Srv }

func NewDKPController(s *Srv) *DKPController { return &DKPController{Srv: s} }

// GET /api/dkp/init/:appointmentId
func (dc *DKPController) Init(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid appointment id")
		return
	}

	draft, err := dc.Repo.InitDKP(c.Request.Context(), appointmentID)
	if err != nil {
		if err == db.ErrDKPIncomplete {
			respondErr(c, http.StatusBadRequest, "Appointment is not ready for document issuance")
			return
		}
		dc.logErr("dkp_init", err)
		respondErr(c, http.StatusInternalServerError, "Document prefill failed")
		return
	}
	respond(c, app.H{
		"manager_full_name": draft.ManagerFullName,
		"client_full_name":  draft.ClientFullName,
		"car_vin":           draft.CarVIN,
		"car_brand":         draft.CarBrand,
		"car_model":         draft.CarModel,
		"car_year":          draft.CarYear,
		"car_price":         draft.CarPrice,
	})
}

// POST /api/dkp/create
// The request struct is the field whitelist: anything not listed here never
// reaches the store.
func (dc *DKPController) Create(c *gin.Context) {
	var in struct {
		AppointmentID uint    `json:"appointment_id" binding:"required"`
		Place         string  `json:"place"`
		Date          string  `json:"date"`
		OwnerFullname string  `json:"owner_fullname" binding:"required"`
		BuyerFullname string  `json:"buyer_fullname" binding:"required"`
		VIN           string  `json:"vin" binding:"required"`
		CarBrandModel string  `json:"car_brand_model"`
		CarYear       int     `json:"car_year"`
		EngineNumber  string  `json:"engine_number"`
		ChassisNumber string  `json:"chassis_number"`
		BodyNumber    string  `json:"body_number"`
		Color         string  `json:"color"`
		Price         float64 `json:"price"`
		Copies        int     `json:"copies"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if in.Copies <= 0 {
		in.Copies = 2
	}

	d := models.DKP{
		AppointmentID: in.AppointmentID,
		Place:         in.Place,
		Date:          in.Date,
		OwnerFullname: in.OwnerFullname,
		BuyerFullname: in.BuyerFullname,
		VIN:           in.VIN,
		CarBrandModel: in.CarBrandModel,
		CarYear:       in.CarYear,
		EngineNumber:  in.EngineNumber,
		ChassisNumber: in.ChassisNumber,
		BodyNumber:    in.BodyNumber,
		Color:         in.Color,
		Price:         in.Price,
		Copies:        in.Copies,
	}
	if err := dc.Repo.CreateDKP(c.Request.Context(), &d); err != nil {
		switch err {
		case db.ErrNotFound:
			respondErr(c, http.StatusNotFound, "Appointment not found")
		case db.ErrDKPIncomplete:
			respondErr(c, http.StatusBadRequest, "Appointment has no assigned manager")
		case db.ErrAppointmentCancelled:
			respondErr(c, http.StatusBadRequest, "Cannot issue a document for a cancelled appointment")
		case db.ErrDKPExists:
			respondErr(c, http.StatusBadRequest, "Document already issued for this appointment")
		default:
			dc.logErr("dkp_create", err)
			respondErr(c, http.StatusInternalServerError, "Document creation failed")
		}
		return
	}

	respond(c, app.H{"dkp_id": d.DKPID})
}

// GET /api/dkp/:dkpId
func (dc *DKPController) Get(c *gin.Context) {
	id, ok := paramUint(c, "dkpId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid document id")
		return
	}

	d, err := dc.Repo.FindDKPByID(c.Request.Context(), id)
	if err != nil {
		if err == db.ErrNotFound {
			respondErr(c, http.StatusNotFound, "Document not found")
			return
		}
		dc.logErr("dkp_get", err)
		respondErr(c, http.StatusInternalServerError, "Document loading failed")
		return
	}
	c.JSON(http.StatusOK, app.H{"error": nil, "data": d})
}

// GET /api/dkp/:dkpId/pdf
// Rendering derives bytes from the stored row only; no state changes.
func (dc *DKPController) RenderPDF(c *gin.Context) {
	id, ok := paramUint(c, "dkpId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid document id")
		return
	}

	d, err := dc.Repo.FindDKPByID(c.Request.Context(), id)
	if err != nil {
		if err == db.ErrNotFound {
			respondErr(c, http.StatusNotFound, "Document not found")
			return
		}
		dc.logErr("dkp_pdf", err)
		respondErr(c, http.StatusInternalServerError, "Document loading failed")
		return
	}

	b, err := pdf.RenderDKP(d)
	if err != nil {
		dc.logErr("dkp_pdf", err)
		respondErr(c, http.StatusInternalServerError, "PDF rendering failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=dkp_%d.pdf", d.DKPID))
	c.Data(http.StatusOK, "application/pdf", b)
}
