package config

import "time"

type HTTP struct {
	BaseURL     string    `env:"BASE_URL,expand" envDefault:"/"`
	Address     string    `env:"ADDRESS,expand" envDefault:":8000"`
	CORSEnabled bool      `env:"CORS_ENABLED,expand" envDefault:"true"`
	Auth        Auth      `envPrefix:"AUTH_"`
	RateLimit   RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Auth struct {
	Username string `env:"USERNAME,expand"`
	Password Secret `env:"PASSWORD,expand"`
}

func (a Auth) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"false"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"100ms"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"20"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	TTL          time.Duration `env:"TTL,expand" envDefault:"10m"`
}
