package main

import (
	_ "micsa_os/docs"
	"micsa_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           MICSA OS Quoting API
// @version         1.0
// @description     Quoting core for MICSA OS (pricing engine, quote/project lifecycle, signature requests) backed by DynamoDB.

// @contact.name   MICSA OS
// @contact.email  sistemas@micsa.mx

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
