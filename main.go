package main

import (
	"os"

	"car_dealership_api/app"
	"car_dealership_api/config"
	"car_dealership_api/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	routes.RegisterRoutes(application.Router, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	application.Log.Infof("car dealership API listening on :%s", port)
	if err := application.Router.Run(":" + port); err != nil {
		application.Log.Fatalf("server failed: %v", err)
	}
}
