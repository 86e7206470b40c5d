package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"weekendwish/internal/infra"
)

var Module = fx.Provide(provideDatabase)

func provideDatabase() *gorm.DB {
	return infra.InitPostgresql()
}
