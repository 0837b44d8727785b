package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present and returns the required variables, failing
// on the first missing one.
func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// FormatAccraTime renders a timestamp in Ghana time (GMT, no DST).
func FormatAccraTime(t time.Time) string {
	accra := time.FixedZone("GMT", 0)
	return t.In(accra).Format("2006-01-02 15:04")
}
