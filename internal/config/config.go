package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config armazena a configuração da aplicação
type Config struct {
	ServerPort      int           `envconfig:"SERVER_PORT" default:"8080"`
	JWTSecret       string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL        time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty       bool          `envconfig:"LOG_PRETTY" default:"false"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// Load carrega a configuração das variáveis de ambiente
func Load(cfg *Config) error {
	return envconfig.Process("", cfg)
}
