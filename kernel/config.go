package kernel

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
)

type AppRuntime struct {
	Host    string
	SelfURL string

	ServiceName           string
	ServiceVersion        string
	DeploymentEnvironment string

	AccountName string
	Currencies  string
	CorsOrigins string

	DatabaseDSN    string
	DatabaseClient *gorm.DB

	JaegerEndpoint string
	Insecure       bool

	Diagnostic *AppDiagnostic

	Context context.Context
}

// LoadConfig builds the runtime from the environment. An optional .env
// file is layered underneath; every key has a usable default so the
// service boots with no configuration at all.
func LoadConfig() *AppRuntime {
	_ = godotenv.Load()

	serviceName := envOr("SERVICE_NAME", "payments-api")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		envOr("POSTGRES_ADDRESS", "localhost"),
		envOr("POSTGRES_PORT", "5432"),
		envOr("POSTGRES_USER", "postgres"),
		envOr("POSTGRES_PASSWORD", "postgres"),
		envOr("POSTGRES_DB", "postgres"),
	)

	return &AppRuntime{
		Host:    envOr("HOST", ":8000"),
		SelfURL: envOr("SELF_URL", "http://localhost:8000"),

		ServiceName:           serviceName,
		ServiceVersion:        envOr("SERVICE_VERSION", "1.0.0"),
		DeploymentEnvironment: envOr("DEPLOY_ENV", "development"),

		AccountName: envOr("ACCOUNT_NAME", "Nutanixdev"),
		Currencies:  envOr("CURRENCIES", "USD,EUR,GBP"),
		CorsOrigins: envOr("CORS_ORIGINS", "*"),

		DatabaseDSN: dsn,

		JaegerEndpoint: envOr("JAEGER_ENDPOINT", "localhost:4318"),
		Insecure:       os.Getenv("INSECURE") == "true",

		Diagnostic: &AppDiagnostic{
			Tracer: otel.Tracer(serviceName + "-tracer"),
			Meter:  otel.Meter(serviceName + "-meter"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
