package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Debug       bool
	DBUrl       string
	FrontendURL string

	// Session cookie / JWT
	JWTSecret           string
	CookieName          string
	CookieExpireMinutes int
	CookieSliding       bool

	// File uploads
	WebRoot           string // directory served over HTTP; uploads live under <WebRoot>/Uploads
	MaxFileSize       int64
	AllowedExtensions map[string][]string // allow-list grouped by category

	// Password policy
	PasswordMinLength          int
	PasswordRequireDigit       bool
	PasswordRequireLowercase   bool
	PasswordRequireUppercase   bool
	PasswordRequireNonAlphanum bool

	// Failed-login lockout
	FailedLoginMaxAttempts  int
	FailedLoginBlockMinutes int

	// Redis (lockout counters)
	RedisURL      string
	RedisPassword string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Debug:       getEnvBool("DEBUG", false),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		JWTSecret:           getEnv("JWT_SECRET", ""),
		CookieName:          getEnv("AUTH_COOKIE_NAME", "application_token"),
		CookieExpireMinutes: getEnvInt("AUTH_COOKIE_EXPIRE_MINUTES", 30),
		CookieSliding:       getEnvBool("AUTH_COOKIE_SLIDING", false),

		WebRoot:           getEnv("WEB_ROOT", "wwwroot"),
		MaxFileSize:       getEnvInt64("FILE_MAX_SIZE", 5*1024*1024),
		AllowedExtensions: loadExtensionGroups(),

		PasswordMinLength:          getEnvInt("PASSWORD_REQUIRED_LENGTH", 6),
		PasswordRequireDigit:       getEnvBool("PASSWORD_REQUIRE_DIGIT", false),
		PasswordRequireLowercase:   getEnvBool("PASSWORD_REQUIRE_LOWERCASE", false),
		PasswordRequireUppercase:   getEnvBool("PASSWORD_REQUIRE_UPPERCASE", false),
		PasswordRequireNonAlphanum: getEnvBool("PASSWORD_REQUIRE_NONALPHANUMERIC", false),

		FailedLoginMaxAttempts:  getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),
		FailedLoginBlockMinutes: getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	return cfg, nil
}

// loadExtensionGroups reads the grouped upload allow-list from
// FILE_ALLOWED_<GROUP> comma lists. The defaults mirror the groups the
// deployment shipped with.
func loadExtensionGroups() map[string][]string {
	groups := map[string]string{
		"Documents": getEnv("FILE_ALLOWED_DOCUMENTS", ".pdf,.doc,.docx,.txt,.rtf"),
		"Images":    getEnv("FILE_ALLOWED_IMAGES", ".png,.jpg,.jpeg,.gif,.webp"),
		"Archives":  getEnv("FILE_ALLOWED_ARCHIVES", ".zip"),
	}

	allowed := make(map[string][]string, len(groups))
	for name, list := range groups {
		var exts []string
		for _, ext := range strings.Split(list, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		if len(exts) > 0 {
			allowed[name] = exts
		}
	}
	return allowed
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
