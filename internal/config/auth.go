package config

import "time"

type Auth struct {
	// Secret signs the Bearer tokens issued on signup and login. When
	// empty, an ephemeral secret is generated at startup and all tokens
	// are invalidated on restart.
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
