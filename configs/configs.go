package configs

import (
	"log"
	"movie_watchlist/model"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                string
	MongodbDatabaseUrl  string
	MongodbDatabaseName string
	SessionSecret       string
	SessionMaxAge       time.Duration
	CookieSecure        bool
	TmdbApiKey          string
	TmdbBaseUrl         string
	TmdbTimeout         time.Duration
	TmdbFeaturedCountry string
	RequestTimeout      time.Duration
	RedisUrl            string
	RedisPassword       string
	SentryDns           string
	SentryRelease       string
	PrintErrors         bool
	LogLevel            string
	LogFormat           string
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

// SetConfigs replaces the loaded configuration, tests use it to avoid touching the environment.
func SetConfigs(c ConfigStruct) {
	configs = c
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = getEnvDefault("PORT", "3000")
	configs.MongodbDatabaseUrl = getEnvDefault("MONGODB_DATABASE_URL", "mongodb://localhost:27017")
	configs.MongodbDatabaseName = getEnvDefault("MONGODB_DATABASE_NAME", "movie_watchlist")
	configs.SessionSecret = os.Getenv("SESSION_SECRET")
	configs.SessionMaxAge = time.Duration(getEnvInt("SESSION_MAX_AGE_HOURS", 168)) * time.Hour
	configs.CookieSecure = os.Getenv("COOKIE_SECURE") == "true"
	configs.TmdbApiKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	configs.TmdbBaseUrl = getEnvDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	configs.TmdbTimeout = time.Duration(getEnvInt("TMDB_TIMEOUT_SEC", 10)) * time.Second
	configs.TmdbFeaturedCountry = getEnvDefault("TMDB_FEATURED_COUNTRY", "IN")
	configs.RequestTimeout = time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.LogLevel = getEnvDefault("LOG_LEVEL", "info")
	configs.LogFormat = getEnvDefault("LOG_FORMAT", "console")
}

// Validate reports every missing required setting at once.
func (c ConfigStruct) Validate() error {
	var missing []string
	if c.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if c.TmdbApiKey == "" {
		missing = append(missing, "TMDB_API_KEY")
	}
	if len(missing) > 0 {
		return &model.ConfigurationError{Missing: missing}
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func getEnvDefault(key string, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
