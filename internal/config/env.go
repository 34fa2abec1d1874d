package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string
	GinMode      string
	DBDSN        string
	TripsAPIBase string
	CorsOrigins  []string
}

func LoadEnv() Env {
	// .env is optional; deployments set real vars directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/tripmate?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	apiBase := strings.TrimSpace(os.Getenv("TRIPS_API_BASE"))
	if apiBase == "" {
		apiBase = "http://127.0.0.1" + appAddr
	}
	apiBase = strings.TrimRight(apiBase, "/")

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:      appAddr,
		GinMode:      ginMode,
		DBDSN:        dsn,
		TripsAPIBase: apiBase,
		CorsOrigins:  origins,
	}
}
