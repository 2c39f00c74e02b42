package bootstrap

import (
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/env"
)

type Config struct {
	HttpPort   string
	DbSettings database.PostgresSettings

	JwtSecret   string
	SteamApiKey string

	BackendUrl  string
	FrontendUrl string
}

func LoadConfig() Config {
	cfg := Config{
		HttpPort: ":5000",
		DbSettings: database.PostgresSettings{
			User:       "skins",
			Password:   "skinspass",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "cs_skins_db",
			SSlEnabled: false,
		},
		JwtSecret:   "cs-skins-secret",
		BackendUrl:  "http://localhost:5000",
		FrontendUrl: "http://localhost:3000",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvSteamApiKey, &cfg.SteamApiKey)
	env.TrySetFromEnv(env.EnvBackendUrl, &cfg.BackendUrl)
	env.TrySetFromEnv(env.EnvFrontendUrl, &cfg.FrontendUrl)

	return cfg
}
