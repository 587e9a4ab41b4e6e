package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env if present; deployments set variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using process environment")
	}
}
