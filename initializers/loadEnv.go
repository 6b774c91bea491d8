package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if one is present. Missing files are fine; real
// environments set their variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is.")
	}
}
