package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type DatabaseDriver string

const (
	DatabaseDriverSQLite DatabaseDriver = "sqlite"
	DatabaseDriverGorm   DatabaseDriver = "gorm"
)

type Database struct {
	Driver      DatabaseDriver `env:"DRIVER" envDefault:"sqlite"`
	DSN         string         `env:"DSN" envDefault:"todo.db"`
	BusyTimeout time.Duration  `env:"BUSY_TIMEOUT" envDefault:"5s"`
}
