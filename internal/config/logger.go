package config

import "log/slog"

type LoggerFormat string

const (
	LoggerFormatText LoggerFormat = "text"
	LoggerFormatJSON LoggerFormat = "json"
	LoggerFormatTint LoggerFormat = "tint"
)

type Logger struct {
	Level  slog.Level   `env:"LEVEL,expand" envDefault:"info"`
	Format LoggerFormat `env:"FORMAT,expand" envDefault:"text"`
}
