package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvJwtSecret = "JWT_SECRET"

	EnvSteamApiKey = "STEAM_API_KEY"
	EnvFrontendUrl = "FRONTEND_URL"
	EnvBackendUrl  = "BACKEND_URL"
)
