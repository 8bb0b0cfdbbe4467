package db_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelmate/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideLogger)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideLogger() *zap.SugaredLogger {
	return infra.InitLogger()
}
