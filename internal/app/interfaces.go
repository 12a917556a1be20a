package app

import (
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/GuimaraesZ/workshop/config"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// EventPublisher provides process event publishing
type EventPublisher interface {
	Publish(topic string, args ...interface{})
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Components should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	EventPublisher
	SchedulerProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
