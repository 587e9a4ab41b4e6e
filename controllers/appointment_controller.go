package controllers

import (
	"net/http"
	"strconv"
	"time"

	"car_dealership_api/app"
	"car_dealership_api/db"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct{ *Srv }

func NewAppointmentController(s *Srv) *AppointmentController {
	return &AppointmentController{Srv: s}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// GET /api/appointments/user/:userId
// Regular users may fetch only their own list; staff may fetch anyone's.
func (ap *AppointmentController) ListUserAppointments(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid user id")
		return
	}

	uid, _ := currentUserID(c)
	if role := currentRole(c); role == models.RoleUser && uid != userID {
		respondErr(c, http.StatusForbidden, "forbidden")
		return
	}

	rows, err := ap.Repo.ListUserAppointments(c.Request.Context(), userID)
	if err != nil {
		ap.logErr("list_user_appointments", err)
		respondErr(c, http.StatusInternalServerError, "Appointments loading failed")
		return
	}
	respond(c, app.H{"appointments": rows})
}

// GET /api/appointments/manager
func (ap *AppointmentController) ListManagerAppointments(c *gin.Context) {
	rows, err := ap.Repo.ListManagerAppointments(c.Request.Context())
	if err != nil {
		ap.logErr("list_manager_appointments", err)
		respondErr(c, http.StatusInternalServerError, "Manager appointments loading failed")
		return
	}
	respond(c, app.H{"appointments": rows})
}

// POST /api/appointments/:appointmentId/assign
// The manager id is the caller's own, taken from the session.
func (ap *AppointmentController) Assign(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid appointment id")
		return
	}
	managerID, ok := currentUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := ap.Repo.AssignManager(c.Request.Context(), appointmentID, managerID); err != nil {
		if err == db.ErrAlreadyAssigned {
			respondErr(c, http.StatusBadRequest, "Appointment not found or already assigned to another manager")
			return
		}
		ap.logErr("assign_manager", err)
		respondErr(c, http.StatusInternalServerError, "Manager assignment failed")
		return
	}

	appt, err := ap.Repo.FindAppointmentByID(c.Request.Context(), appointmentID)
	if err != nil {
		ap.logErr("assign_manager", err)
		respondErr(c, http.StatusInternalServerError, "Manager assignment failed")
		return
	}
	respond(c, app.H{"message": "Manager assigned successfully", "appointment": appt})
}

// POST /api/appointments/:appointmentId/unassign
func (ap *AppointmentController) Unassign(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid appointment id")
		return
	}
	managerID, ok := currentUserID(c)
	if !ok {
		respondErr(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := ap.Repo.UnassignManager(c.Request.Context(), appointmentID, managerID); err != nil {
		if err == db.ErrNotAssignee {
			respondErr(c, http.StatusBadRequest, "Appointment not found or manager not assigned")
			return
		}
		ap.logErr("unassign_manager", err)
		respondErr(c, http.StatusInternalServerError, "Manager unassignment failed")
		return
	}

	appt, err := ap.Repo.FindAppointmentByID(c.Request.Context(), appointmentID)
	if err != nil {
		ap.logErr("unassign_manager", err)
		respondErr(c, http.StatusInternalServerError, "Manager unassignment failed")
		return
	}
	respond(c, app.H{"message": "Manager unassigned successfully", "appointment": appt})
}

// PUT /api/appointments/:appointmentId
func (ap *AppointmentController) Update(c *gin.Context) {
	appointmentID, ok := paramUint(c, "appointmentId")
	if !ok {
		respondErr(c, http.StatusBadRequest, "invalid appointment id")
		return
	}

	var in struct {
		AppointmentDate time.Time `json:"appointment_date" binding:"required"`
		DurationMinutes int       `json:"duration_minutes" binding:"required"`
		Purpose         string    `json:"purpose" binding:"required"`
		Status          string    `json:"status" binding:"required"`
		Notes           string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		respondErr(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if !models.ValidAppointmentStatus(in.Status) {
		respondErr(c, http.StatusBadRequest, "Status must be Scheduled, Completed, or Cancelled")
		return
	}

	appt, err := ap.Repo.UpdateAppointment(c.Request.Context(), appointmentID, db.UpdateAppointmentInput{
		AppointmentDate: in.AppointmentDate,
		DurationMinutes: in.DurationMinutes,
		Purpose:         in.Purpose,
		Status:          in.Status,
		Notes:           in.Notes,
	})
	if err != nil {
		if err == db.ErrNotFound {
			respondErr(c, http.StatusNotFound, "Appointment not found")
			return
		}
		ap.logErr("update_appointment", err)
		respondErr(c, http.StatusInternalServerError, "Appointment update failed")
		return
	}
	respond(c, app.H{"appointment": appt})
}
