package main

import (
	"os"

	"trainpilot/backend/internal/app"
)

// @title           TrainPilot Onboarding API
// @version         1.0
// @description     Conversational onboarding backend that builds weekly training plans.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	os.Exit(app.Run())
}
