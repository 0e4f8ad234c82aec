package main

import (
	_ "retail_assistant/docs"
	"retail_assistant/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Retail Assistant API
// @version         1.0
// @description     Voice retail assistant: catalog, order preview/confirm, contact requests and complaints.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
