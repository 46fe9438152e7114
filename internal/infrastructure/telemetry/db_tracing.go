package telemetry

import (
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/happydigitalmarketings/priyam/internal/infrastructure/config"
)

// EnableGormTracing registers the otelgorm plugin so every query shows up
// as a span under the request trace. Query variables are excluded from the
// recorded statements.
func EnableGormTracing(db *gorm.DB, cfg config.TelemetryConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("tracing disabled, skipping gorm instrumentation")
		return nil
	}

	return db.Use(otelgorm.NewPlugin(
		otelgorm.WithDBName("priyam"),
		otelgorm.WithoutQueryVariables(),
	))
}
