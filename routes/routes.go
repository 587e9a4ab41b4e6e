package routes

import (
	"net/http"
	"time"

	"car_dealership_api/app"
	"car_dealership_api/controllers"
	"car_dealership_api/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	ac := controllers.NewAuthController(s)
	cc := controllers.NewCarController(s)
	apc := controllers.NewAppointmentController(s)
	ctc := controllers.NewContractController(s)
	uc := controllers.NewUserController(s)
	dc := controllers.NewDKPController(s)

	authMW := app.AuthRequired(a.AppSessions(), s.Repo)
	staffMW := app.RoleRequired(models.RoleManager, models.RoleAdministrator)
	adminMW := app.RoleRequired(models.RoleAdministrator)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// Public
	r.POST("/api/auth/login", ac.Login)
	r.POST("/api/auth/register", ac.Register)
	r.GET("/api/health", func(c *app.Ctx) {
		sqlDB, err := a.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, app.H{
			"status":    "OK",
			"message":   "All modules are working with PostgreSQL",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Any authenticated user
	api := r.Group("/api", authMW, seenMW)
	{
		api.POST("/auth/logout", ac.Logout)
		api.GET("/cars", cc.ListCars)
		api.POST("/cars/:vin/book", cc.Book)
		api.GET("/appointments/user/:userId", apc.ListUserAppointments)
		api.GET("/users/managers", uc.ListManagers)
		api.GET("/dkp/:dkpId", dc.Get)
		api.GET("/dkp/:dkpId/pdf", dc.RenderPDF)
	}

	// Managers and administrators
	staff := r.Group("/api", authMW, seenMW, staffMW)
	{
		staff.GET("/appointments/manager", apc.ListManagerAppointments)
		staff.POST("/appointments/:appointmentId/assign", apc.Assign)
		staff.POST("/appointments/:appointmentId/unassign", apc.Unassign)
		staff.PUT("/appointments/:appointmentId", apc.Update)
		staff.GET("/contracts", ctc.ListContracts)
		staff.GET("/dkp/init/:appointmentId", dc.Init)
		staff.POST("/dkp/create", dc.Create)
	}

	// Administrators only
	admin := r.Group("/api", authMW, seenMW, adminMW)
	{
		admin.GET("/users", uc.ListUsers)
		admin.PUT("/users/:id", uc.UpdateUser)
		admin.DELETE("/users/:id", uc.DeleteUser)
		admin.POST("/cars", cc.CreateCar)
	}
}
