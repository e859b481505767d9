package config

import (
	"encoding/json"
	"log/slog"
)

const redacted = "***"

// Secret is a configuration value which is never printed in clear.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}

	return redacted
}

func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

var (
	_ slog.LogValuer = Secret("")
	_ json.Marshaler = Secret("")
)
