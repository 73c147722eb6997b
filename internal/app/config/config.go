package config

import (
	"github.com/cperault/clinical-screener-backend/internal/pkg/utils"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "clinical_screener"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILE_NAME", "screener.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILE_NAME", "screener_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                              utils.GetEnvString("APP_ENV", "development"),
			Port:                             utils.GetEnvString("APP_PORT", ":3001"),
			Version:                          utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                         utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                   utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                      utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 15),
			RequestTimeoutInSeconds:          utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ScreenerContentPath:              utils.GetEnvString("APP_SCREENER_CONTENT_PATH", "data/screener.json"),
			QuestionCacheExpiryTimeInMinutes: utils.GetEnvInt("APP_QUESTION_CACHE_EXPIRY_TIME_IN_MINUTES", 30),
		},
	}
}
