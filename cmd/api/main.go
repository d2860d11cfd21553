package main

import (
	_ "ucraft_estimates/docs"
	"ucraft_estimates/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Ucraft Estimates API
// @version         1.0
// @description     Construction estimates, printable documents and 30/40/30 installment payments.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
