package config

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
	}

	App struct {
		Env                              string
		Port                             string
		Version                          string
		Timezone                         string
		EndpointPrefix                   string
		MaxRequests                      int
		ShutdownTimeoutInSeconds         int
		RequestTimeoutInSeconds          int
		ScreenerContentPath              string
		QuestionCacheExpiryTimeInMinutes int
	}

	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
