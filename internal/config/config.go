package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio. Se construye una sola vez
// al arrancar y se pasa por valor a quien la necesite.
type Config struct {
	Host               string        `env:"HOST" envDefault:"0.0.0.0"`
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"5000"`
	Debug              bool          `env:"DEBUG" envDefault:"true"`
	SecretKey          string        `env:"SECRET_KEY"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	ChatRateLimit      int           `env:"CHAT_RATE_LIMIT" envDefault:"60"`
	ChatRateWindow     time.Duration `env:"CHAT_RATE_WINDOW" envDefault:"1m"`
}

// secretKeyBytes replica el tamaño de la clave aleatoria generada al arrancar.
const secretKeyBytes = 24

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr devuelve host:puerto listo para http.Server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.HTTPPort)
}

// AllowAllOrigins indica si CORS acepta cualquier origen.
func (c Config) AllowAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}

func (c *Config) normalize() error {
	c.Host = strings.TrimSpace(c.Host)
	c.HTTPPort = strings.TrimSpace(c.HTTPPort)

	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %q", c.HTTPPort)
	}
	if c.ChatRateLimit <= 0 {
		return errors.New("CHAT_RATE_LIMIT must be positive")
	}
	if c.ChatRateWindow <= 0 {
		return errors.New("CHAT_RATE_WINDOW must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CORSAllowedOrigins = origins

	if strings.TrimSpace(c.SecretKey) == "" {
		key, err := randomSecret(secretKeyBytes)
		if err != nil {
			return fmt.Errorf("generate secret key: %w", err)
		}
		c.SecretKey = key
	}
	return nil
}

func randomSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ClientConfig configura el cliente de terminal.
type ClientConfig struct {
	ServerURL string        `env:"CHAT_SERVER_URL" envDefault:"http://localhost:5000"`
	Timeout   time.Duration `env:"CHAT_CLIENT_TIMEOUT" envDefault:"15s"`
}

// LoadClientConfig carga la configuración del cliente desde variables de entorno.
func LoadClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.ServerURL) == "" {
		return nil, errors.New("CHAT_SERVER_URL must not be empty")
	}
	return &cfg, nil
}
