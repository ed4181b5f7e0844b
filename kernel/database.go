package kernel

import (
	"log"
	"os"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutanixdev/payments-api/models"
)

func (art *AppRuntime) PrepareDatabase() error {
	dbLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	// TranslateError so constraint violations come back as gorm
	// sentinel errors instead of raw SQLSTATE strings.
	db, err := gorm.Open(postgres.Open(art.DatabaseDSN), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	if err = db.Use(otelgorm.NewPlugin(
		otelgorm.WithAttributes(),
		otelgorm.WithTracerProvider(otel.GetTracerProvider()),
	)); err != nil {
		return err
	}

	if err = db.AutoMigrate(&models.Payment{}); err != nil {
		return err
	}

	art.DatabaseClient = db

	return nil
}
