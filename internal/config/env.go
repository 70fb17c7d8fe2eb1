package config

import (
	"fmt"
	"os"
	"strings"
)

// Env is the process-wide configuration. Loaded once at startup and passed
// explicitly into routers and handlers; nothing mutates it afterwards.
type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// Base URLs of the peer services.
	TripServiceURL    string
	BookingServiceURL string

	CORSOrigins []string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:           getenv("APP_ADDR", ":8080"),
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:            getenv("DB_USER", "root"),
		DBPass:            strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:            getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:            getenv("DB_NAME", "bus_reservation"),
		JWTSecret:         getenv("JWT_SECRET", "change-me-in-production"),
		TripServiceURL:    getenv("TRIP_SERVICE_URL", "http://localhost:8081"),
		BookingServiceURL: getenv("BOOKING_SERVICE_URL", "http://localhost:8082"),
	}

	origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if origins == "" {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

// DSN renders the MySQL connection string for this environment.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPass, e.DBHost, e.DBName)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
