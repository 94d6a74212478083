// @title FoodBridge Volunteer API
// @version 1.0
// @description Backend API for volunteer sign-up and the admin dashboard
package main

import (
	"errors"

	"github.com/spf13/viper"

	_ "github.com/AniketJas/volunteer-signup/docs"

	"github.com/AniketJas/volunteer-signup/api"
	"github.com/AniketJas/volunteer-signup/logging"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logging.Log.Errorf("Failed to read config file: %v", err)
			panic("Failed to read config file: " + err.Error())
		}
		logging.Log.Info("No config file found, using defaults")
	}

	// Read config
	config := api.ReadConfig()

	// Start the service
	service := api.NewServer(config)
	service.Start()
}
