package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load loads environment variables from a .env file if there is one.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}
}

// StringVariable returns the value of an environment variable or a default value
func StringVariable(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

// IntVariable returns a non-negative integer environment variable, or defaultValue when
// it is unset or not a non-negative integer.
func IntVariable(name string, defaultValue int) int {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil || intValue < 0 {
		logrus.WithField("variable", name).Warnf("Ignoring invalid integer %q", value)
		return defaultValue
	}
	return intValue
}
