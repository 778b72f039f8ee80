package config

import "os"

// Config carries all process configuration. It is built once at startup
// and injected into the components that need it.
type Config struct {
	Port            string
	Env             string
	JWTSecret       string
	PostgresConnStr string
	S3Bucket        string
	MediaBaseURL    string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretjwtkey"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		MediaBaseURL:    getEnv("MEDIA_BASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
