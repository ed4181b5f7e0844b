package payments

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutanixdev/payments-api/kernel"
	"github.com/nutanixdev/payments-api/middleware"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func newTestRuntime(t *testing.T) (*kernel.AppRuntime, sqlmock.Sqlmock) {
	t.Helper()

	gdb, mock := newMockDB(t)

	return &kernel.AppRuntime{
		ServiceName:           "payments-api",
		ServiceVersion:        "test",
		DeploymentEnvironment: "test",
		AccountName:           "Nutanixdev",
		Currencies:            "USD,EUR,GBP",
		DatabaseClient:        gdb,
		Diagnostic: &kernel.AppDiagnostic{
			Tracer: otel.Tracer("payments-api-test"),
			Meter:  otel.Meter("payments-api-test"),
		},
		Context: context.Background(),
	}, mock
}

func newTestRouter(art *kernel.AppRuntime) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.TracerMiddleware(art))

	api := r.Group("/")
	RegisterController(api)

	return r
}
