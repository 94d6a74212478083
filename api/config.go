package api

import (
	"github.com/spf13/viper"

	"github.com/AniketJas/volunteer-signup/logging"
)

type Config struct {
	StorageConfig
	ServerConfig
	AuthConfig
}

type StorageConfig struct {
	DataDir          string
	TableVolunteers  string
	TableAdminLogins string
}

type ServerConfig struct {
	Port int
}

type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
}

func ReadConfig() *Config {
	return &Config{
		StorageConfig: StorageConfig{
			DataDir:          getStringOrDefault("storage.dataDir", "./data"),
			TableVolunteers:  getStringOrDefault("storage.tableVolunteers", "volunteers"),
			TableAdminLogins: getStringOrDefault("storage.tableAdminLogins", "adminLogins"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		AuthConfig: AuthConfig{
			AdminEmail:    getStringOrDefault("auth.adminEmail", "admin@ngo.org"),
			AdminPassword: getStringOrDefault("auth.adminPassword", "admin123"),
		},
	}
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
