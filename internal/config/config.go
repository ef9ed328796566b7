// Package config loads process configuration from the environment. A .env file in
// the working directory is read first when present.
package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Backends selectable with ROOMIE_BACKEND.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Client configures the roomie CLI.
type Client struct {
	Backend        string        `env:"ROOMIE_BACKEND,default=local" validate:"oneof=local remote"`
	DataDir        string        `env:"ROOMIE_DATA_DIR,default=./data/roomiesync" validate:"required"`
	APIURL         string        `env:"ROOMIE_API_URL,default=http://localhost:3000/api" validate:"required,url"`
	RequestTimeout time.Duration `env:"ROOMIE_REQUEST_TIMEOUT,default=10s" validate:"gt=0"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GeminiModel    string        `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	LogLevel       string        `env:"LOG_LEVEL,default=warn"`
}

// Server configures cmd/server.
type Server struct {
	Host          string        `env:"HOST,default=0.0.0.0"`
	Port          int           `env:"PORT,default=3000" validate:"gt=0,lte=65535"`
	DBPath        string        `env:"DB_PATH,default=./data/roomiesync.db" validate:"required"`
	AuthSecret    string        `env:"AUTH_SECRET"`
	TokenDuration time.Duration `env:"TOKEN_DURATION,default=24h" validate:"gt=0"`
	OTLPEndpoint  string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName   string        `env:"OTEL_SERVICE_NAME,default=roomiesync"`
	LogLevel      string        `env:"LOG_LEVEL,default=info"`
}

// Addr is the listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthEnabled reports whether API requests require a bearer token.
func (s Server) AuthEnabled() bool {
	return s.AuthSecret != ""
}

var validate = validator.New()

// LoadClient reads the client configuration from the environment.
func LoadClient() (Client, error) {
	var c Client
	err := load(&c)
	return c, err
}

// LoadServer reads the server configuration from the environment.
func LoadServer() (Server, error) {
	var s Server
	err := load(&s)
	return s, err
}

func load(v any) error {
	_ = godotenv.Load()
	if _, err := env.UnmarshalFromEnviron(v); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
